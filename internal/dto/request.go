package dto

import "github.com/Rafiffarihan13/SaveFood/internal/models"

type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type ReserveRequest struct {
	UserID string `json:"user_id"`
}

type VerifyRequest struct {
	Code string `json:"code"`
}

type ExtendDeadlineRequest struct {
	Hours int `json:"hours"`
}

type WishlistRequest struct {
	ListingID string `json:"listing_id"`
}
