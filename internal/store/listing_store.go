// Package store holds the service's in-memory collections. Each store owns
// its map behind an RWMutex and hands out copies; all mutation goes through
// its methods so a failed operation never leaves a partial write behind.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrOutOfStock = errors.New("listing is out of stock")
	ErrExpired    = errors.New("listing pickup window has ended")
)

type ListingStore struct {
	mu       sync.RWMutex
	listings map[string]*models.Listing
}

func NewListingStore() *ListingStore {
	return &ListingStore{listings: make(map[string]*models.Listing)}
}

func (s *ListingStore) Insert(l models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ID] = &l
}

func (s *ListingStore) Get(id string) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[id]
	if !ok {
		return models.Listing{}, false
	}
	return *l, true
}

// List returns a snapshot of every listing, newest first.
func (s *ListingStore) List() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ListByPartner returns the partner's listings sorted by pickup deadline,
// soonest first.
func (s *ListingStore) ListByPartner(partnerID string) []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Listing
	for _, l := range s.listings {
		if l.PartnerID == partnerID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AvailableUntil.Before(out[j].AvailableUntil)
	})
	return out
}

// ReserveOne atomically checks availability and decrements stock by one.
// Stock is checked before expiry, so a listing that is both empty and past
// its deadline reports ErrOutOfStock. Stock can never go below zero.
func (s *ListingStore) ReserveOne(id string, now time.Time) (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return models.Listing{}, ErrNotFound
	}
	if l.Stock <= 0 {
		return models.Listing{}, ErrOutOfStock
	}
	if !l.AvailableUntil.After(now) {
		return models.Listing{}, ErrExpired
	}
	l.Stock--
	return *l, nil
}

// ExtendDeadline pushes the pickup deadline forward by the given number of
// hours. No upper bound is enforced.
func (s *ListingStore) ExtendDeadline(id string, hours int) (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return models.Listing{}, ErrNotFound
	}
	l.AvailableUntil = l.AvailableUntil.Add(time.Duration(hours) * time.Hour)
	return *l, nil
}

// Retract zeroes the stock and ends the pickup window immediately, making
// the listing non-reservable. Calling it again yields the same end state.
func (s *ListingStore) Retract(id string, now time.Time) (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return models.Listing{}, ErrNotFound
	}
	l.Stock = 0
	l.AvailableUntil = now
	return *l, nil
}
