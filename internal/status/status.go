// Package status classifies listings and reservations against the current
// time. Everything here is a pure function; every screen-facing payload and
// the periodic refresh derive their display state through this package.
package status

import (
	"fmt"
	"sort"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
)

type State string

const (
	StateActive    State = "active"
	StateSoldOut   State = "sold_out"
	StateExpired   State = "expired"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
)

// UrgentWindow is the remaining-time threshold below which an active listing
// is surfaced as urgent.
const UrgentWindow = 2 * time.Hour

// IsExpired reports whether the pickup deadline has passed.
func IsExpired(l *models.Listing, now time.Time) bool {
	return !l.AvailableUntil.After(now)
}

// IsSoldOut reports whether the listing has no stock left, independent of
// expiry.
func IsSoldOut(l *models.Listing) bool {
	return l.Stock <= 0
}

// IsAvailable reports whether the listing can still be reserved.
func IsAvailable(l *models.Listing, now time.Time) bool {
	return l.Stock > 0 && l.AvailableUntil.After(now)
}

// ForListing collapses a listing into a single display state. Expiry wins
// over sold-out when both hold.
func ForListing(l *models.Listing, now time.Time) State {
	switch {
	case IsExpired(l, now):
		return StateExpired
	case IsSoldOut(l):
		return StateSoldOut
	default:
		return StateActive
	}
}

// ForReservation returns the reservation's display state: the stored ledger
// status, except that a still-active reservation is shown as expired once
// its listing's pickup window has closed.
func ForReservation(r *models.Reservation, l *models.Listing, now time.Time) State {
	switch r.Status {
	case models.ReservationCompleted:
		return StateCompleted
	case models.ReservationCancelled:
		return StateCancelled
	}
	if l != nil && IsExpired(l, now) {
		return StateExpired
	}
	return StateActive
}

// Urgent filters to active listings with less than UrgentWindow remaining,
// sorted ascending by remaining time.
func Urgent(listings []models.Listing, now time.Time) []models.Listing {
	var urgent []models.Listing
	for _, l := range listings {
		if IsAvailable(&l, now) && l.AvailableUntil.Sub(now) < UrgentWindow {
			urgent = append(urgent, l)
		}
	}
	sort.Slice(urgent, func(i, j int) bool {
		return urgent[i].AvailableUntil.Before(urgent[j].AvailableUntil)
	})
	return urgent
}

// Countdown renders the remaining pickup time the way the countdown widget
// shows it: "3h 12m" above one hour, "12m 40s" below, "time up" once past.
func Countdown(until, now time.Time) string {
	d := until.Sub(now)
	if d <= 0 {
		return "time up"
	}
	if h := int(d.Hours()); h > 0 {
		return fmt.Sprintf("%dh %dm", h, int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
