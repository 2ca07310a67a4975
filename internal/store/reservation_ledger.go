package store

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
)

// ErrCodeTaken is returned when a new reservation's code collides with an
// already-active one; callers regenerate and retry.
var ErrCodeTaken = errors.New("reservation code already in use")

// ReservationLedger keeps every reservation ever made (completed and
// cancelled rows stay for history) plus the completed-pickup log. A
// secondary index maps normalized codes to the single active reservation
// holding them.
type ReservationLedger struct {
	mu           sync.RWMutex
	reservations map[string]*models.Reservation
	byCode       map[string]string // normalized code -> reservation id, active only
	history      []models.CompletedPickup
}

func NewReservationLedger() *ReservationLedger {
	return &ReservationLedger{
		reservations: make(map[string]*models.Reservation),
		byCode:       make(map[string]string),
	}
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Insert stores a new active reservation, claiming its code in the index.
func (s *ReservationLedger) Insert(r models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := normalizeCode(r.Code)
	if _, taken := s.byCode[code]; taken {
		return ErrCodeTaken
	}
	s.reservations[r.ID] = &r
	if r.Status == models.ReservationActive {
		s.byCode[code] = r.ID
	}
	return nil
}

func (s *ReservationLedger) Get(id string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, false
	}
	return *r, true
}

// FindActiveByCode looks up the active reservation holding the given code,
// compared case-insensitively.
func (s *ReservationLedger) FindActiveByCode(code string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byCode[normalizeCode(code)]
	if !ok {
		return models.Reservation{}, false
	}
	return *s.reservations[id], true
}

// SetStatus moves a reservation out of the active state. The code index
// entry is released so the code can no longer be verified.
func (s *ReservationLedger) SetStatus(id string, status models.ReservationStatus) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	if r.Status == models.ReservationActive && status != models.ReservationActive {
		delete(s.byCode, normalizeCode(r.Code))
	}
	r.Status = status
	return *r, nil
}

// CancelAllForListing cancels every active reservation referencing the
// listing and reports how many were cancelled.
func (s *ReservationLedger) CancelAllForListing(listingID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.reservations {
		if r.ListingID == listingID && r.Status == models.ReservationActive {
			delete(s.byCode, normalizeCode(r.Code))
			r.Status = models.ReservationCancelled
			n++
		}
	}
	return n
}

// ListByUser returns the user's reservations, newest first.
func (s *ReservationLedger) ListByUser(userID string) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Reservation
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ListActiveByListings returns active reservations for any of the given
// listing ids, oldest first.
func (s *ReservationLedger) ListActiveByListings(listingIDs map[string]struct{}) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Reservation
	for _, r := range s.reservations {
		if _, ok := listingIDs[r.ListingID]; ok && r.Status == models.ReservationActive {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AppendHistory records a completed pickup for partner reporting.
func (s *ReservationLedger) AppendHistory(entry models.CompletedPickup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry)
}

// HistoryForPartner returns the partner's completed pickups in completion
// order.
func (s *ReservationLedger) HistoryForPartner(partnerID string) []models.CompletedPickup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CompletedPickup
	for _, h := range s.history {
		if h.PartnerID == partnerID {
			out = append(out, h)
		}
	}
	return out
}
