package store

import "sync"

// WishlistStore keeps each user's saved listing ids in insertion order.
type WishlistStore struct {
	mu    sync.RWMutex
	items map[string][]string // user id -> listing ids
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{items: make(map[string][]string)}
}

// Add saves the listing for the user; adding twice is a no-op.
func (s *WishlistStore) Add(userID, listingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.items[userID] {
		if id == listingID {
			return
		}
	}
	s.items[userID] = append(s.items[userID], listingID)
}

func (s *WishlistStore) Remove(userID, listingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.items[userID]
	for i, id := range ids {
		if id == listingID {
			s.items[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (s *WishlistStore) Contains(userID, listingID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.items[userID] {
		if id == listingID {
			return true
		}
	}
	return false
}

// List returns the user's saved listing ids in the order they were added.
func (s *WishlistStore) List(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.items[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
