package models

type Role string

const (
	RoleUser    Role = "USER"
	RolePartner Role = "PARTNER"
)

// Identity is a registered account: either a consumer (RoleUser) or a food
// partner (RolePartner). Partner-only fields are zero for consumers.
type Identity struct {
	ID          string  `json:"id"`
	Role        Role    `json:"role"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	AvatarURL   string  `json:"avatar_url,omitempty"`
	HasLoggedIn bool    `json:"has_logged_in"`
	Address     string  `json:"address,omitempty"`
	VenueType   string  `json:"venue_type,omitempty"`
	Contact     string  `json:"contact,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lng         float64 `json:"lng,omitempty"`
	// RewardPoints accumulates on completed free-item pickups, partners only.
	RewardPoints int `json:"reward_points,omitempty"`
}
