package models

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// QRPrefix is the fixed namespace prepended to a reservation code to form
// the scannable payload.
const QRPrefix = "SAVEFOOD_"

// Reservation is a consumer's claim on one unit of a listing's stock,
// identified by a short human-readable code. Status transitions are
// one-directional: active -> completed or active -> cancelled.
type Reservation struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ListingID string            `json:"listing_id"`
	Code      string            `json:"code"`
	QRPayload string            `json:"qr_payload"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
