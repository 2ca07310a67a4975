package models

import "time"

// CompletedPickup is one row of the completed-transaction history kept for
// partner reporting.
type CompletedPickup struct {
	ReservationID string    `json:"reservation_id"`
	FoodName      string    `json:"food_name"`
	UserName      string    `json:"user_name"`
	PartnerID     string    `json:"partner_id"`
	CompletedAt   time.Time `json:"completed_at"`
}
