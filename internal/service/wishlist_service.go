package service

import (
	"context"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
)

type WishlistService interface {
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error
	Contains(ctx context.Context, userID, listingID string) (bool, error)
	Listings(ctx context.Context, userID string) ([]models.Listing, error)
}

type wishlistService struct {
	wishlists  *store.WishlistStore
	listings   *store.ListingStore
	identities *store.IdentityStore
}

func NewWishlistService(wishlists *store.WishlistStore, listings *store.ListingStore, identities *store.IdentityStore) WishlistService {
	return &wishlistService{wishlists: wishlists, listings: listings, identities: identities}
}

func (s *wishlistService) Add(ctx context.Context, userID, listingID string) error {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return ErrUserNotFound
	}
	if _, ok := s.listings.Get(listingID); !ok {
		return ErrListingNotFound
	}
	s.wishlists.Add(userID, listingID)
	return nil
}

func (s *wishlistService) Remove(ctx context.Context, userID, listingID string) error {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return ErrUserNotFound
	}
	s.wishlists.Remove(userID, listingID)
	return nil
}

func (s *wishlistService) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return false, ErrUserNotFound
	}
	return s.wishlists.Contains(userID, listingID), nil
}

// Listings resolves the user's saved ids to listings, skipping any that no
// longer exist.
func (s *wishlistService) Listings(ctx context.Context, userID string) ([]models.Listing, error) {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return nil, ErrUserNotFound
	}
	ids := s.wishlists.List(userID)
	out := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := s.listings.Get(id); ok {
			out = append(out, l)
		}
	}
	return out, nil
}
