package dto

import (
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/service"
	"github.com/Rafiffarihan13/SaveFood/internal/status"
)

type ListingResponse struct {
	models.Listing
	Status    status.State `json:"status"`
	Countdown string       `json:"countdown"`
}

func ToListingResponse(l models.Listing, now time.Time) ListingResponse {
	return ListingResponse{
		Listing:   l,
		Status:    status.ForListing(&l, now),
		Countdown: status.Countdown(l.AvailableUntil, now),
	}
}

func ToListingResponses(listings []models.Listing, now time.Time) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = ToListingResponse(l, now)
	}
	return out
}

type ReservationResponse struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"user_id"`
	ListingID    string                   `json:"listing_id"`
	Code         string                   `json:"code"`
	QRPayload    string                   `json:"qr_payload"`
	Status       models.ReservationStatus `json:"status"`
	DisplayState status.State             `json:"display_state"`
	CreatedAt    time.Time                `json:"created_at"`
	Listing      *ListingResponse         `json:"listing,omitempty"`
}

func ToReservationResponse(r models.Reservation, l *models.Listing, now time.Time) ReservationResponse {
	resp := ReservationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		ListingID:    r.ListingID,
		Code:         r.Code,
		QRPayload:    r.QRPayload,
		Status:       r.Status,
		DisplayState: status.ForReservation(&r, l, now),
		CreatedAt:    r.CreatedAt,
	}
	if l != nil {
		lr := ToListingResponse(*l, now)
		resp.Listing = &lr
	}
	return resp
}

func ToReservationDetailResponses(details []service.ReservationDetail, now time.Time) []ReservationResponse {
	out := make([]ReservationResponse, len(details))
	for i, d := range details {
		out[i] = ReservationResponse{
			ID:           d.Reservation.ID,
			UserID:       d.Reservation.UserID,
			ListingID:    d.Reservation.ListingID,
			Code:         d.Reservation.Code,
			QRPayload:    d.Reservation.QRPayload,
			Status:       d.Reservation.Status,
			DisplayState: d.DisplayState,
			CreatedAt:    d.Reservation.CreatedAt,
		}
		if d.Listing != nil {
			lr := ToListingResponse(*d.Listing, now)
			out[i].Listing = &lr
		}
	}
	return out
}

type LoginResponse struct {
	Identity  models.Identity `json:"identity"`
	IsNewUser bool            `json:"is_new_user"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
