package models

import "time"

// Listing is a surplus-food offer posted by a partner. Stock never goes
// negative and DiscountedPrice never exceeds OriginalPrice; a discounted
// price of 0 marks the item as free.
type Listing struct {
	ID              string    `json:"id"`
	PartnerID       string    `json:"partner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	Stock           int       `json:"stock"`
	OriginalPrice   float64   `json:"original_price"`
	DiscountedPrice float64   `json:"discounted_price"`
	SurpriseMeal    bool      `json:"surprise_meal"`
	AvailableUntil  time.Time `json:"available_until"`
	Category        string    `json:"category"`
	PickupAddress   string    `json:"pickup_address"`
	PickupLat       float64   `json:"pickup_lat"`
	PickupLng       float64   `json:"pickup_lng"`
	QualityNotes    string    `json:"quality_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Free reports whether the listing is given away at no charge.
func (l *Listing) Free() bool {
	return l.DiscountedPrice == 0
}
