package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/status"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// CreateListingInput is the validated payload for posting a new listing.
type CreateListingInput struct {
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"image_url"`
	Stock           int       `json:"stock" validate:"required,gte=1"`
	OriginalPrice   float64   `json:"original_price" validate:"gte=0"`
	DiscountedPrice float64   `json:"discounted_price" validate:"gte=0,ltefield=OriginalPrice"`
	SurpriseMeal    bool      `json:"surprise_meal"`
	AvailableUntil  time.Time `json:"available_until" validate:"required"`
	Category        string    `json:"category" validate:"required"`
	PickupAddress   string    `json:"pickup_address" validate:"required"`
	PickupLat       float64   `json:"pickup_lat"`
	PickupLng       float64   `json:"pickup_lng"`
	QualityNotes    string    `json:"quality_notes"`
}

type CatalogService interface {
	CreateListing(ctx context.Context, partnerID string, in CreateListingInput) (models.Listing, error)
	Listing(ctx context.Context, id string) (models.Listing, error)
	Listings(ctx context.Context) []models.Listing
	ListingsForPartner(ctx context.Context, partnerID string) ([]models.Listing, error)
	UrgentListings(ctx context.Context) []models.Listing
	ExtendDeadline(ctx context.Context, listingID string, hours int) (models.Listing, error)
	Retract(ctx context.Context, listingID string) (models.Listing, error)
}

type catalogService struct {
	listings   *store.ListingStore
	ledger     *store.ReservationLedger
	identities *store.IdentityStore
	log        *zap.Logger
	now        func() time.Time
}

func NewCatalogService(listings *store.ListingStore, ledger *store.ReservationLedger, identities *store.IdentityStore, log *zap.Logger) CatalogService {
	return &catalogService{
		listings:   listings,
		ledger:     ledger,
		identities: identities,
		log:        log,
		now:        time.Now,
	}
}

func (s *catalogService) CreateListing(ctx context.Context, partnerID string, in CreateListingInput) (models.Listing, error) {
	role, ok := s.identities.Role(partnerID)
	if !ok || role != models.RolePartner {
		return models.Listing{}, ErrNotAPartner
	}

	if err := validate.Struct(in); err != nil {
		return models.Listing{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	now := s.now()
	if !in.AvailableUntil.After(now) {
		return models.Listing{}, fmt.Errorf("%w: pickup deadline must be in the future", ErrValidation)
	}

	listing := models.Listing{
		ID:              uuid.NewString(),
		PartnerID:       partnerID,
		Name:            in.Name,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		Stock:           in.Stock,
		OriginalPrice:   in.OriginalPrice,
		DiscountedPrice: in.DiscountedPrice,
		SurpriseMeal:    in.SurpriseMeal,
		AvailableUntil:  in.AvailableUntil,
		Category:        in.Category,
		PickupAddress:   in.PickupAddress,
		PickupLat:       in.PickupLat,
		PickupLng:       in.PickupLng,
		QualityNotes:    in.QualityNotes,
		CreatedAt:       now,
	}
	s.listings.Insert(listing)

	s.log.Info("listing created",
		zap.String("listing_id", listing.ID),
		zap.String("partner_id", partnerID),
		zap.Int("stock", listing.Stock))
	return listing, nil
}

func (s *catalogService) Listing(ctx context.Context, id string) (models.Listing, error) {
	l, ok := s.listings.Get(id)
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}
	return l, nil
}

func (s *catalogService) Listings(ctx context.Context) []models.Listing {
	return s.listings.List()
}

func (s *catalogService) ListingsForPartner(ctx context.Context, partnerID string) ([]models.Listing, error) {
	role, ok := s.identities.Role(partnerID)
	if !ok || role != models.RolePartner {
		return nil, ErrPartnerNotFound
	}
	return s.listings.ListByPartner(partnerID), nil
}

func (s *catalogService) UrgentListings(ctx context.Context) []models.Listing {
	return status.Urgent(s.listings.List(), s.now())
}

func (s *catalogService) ExtendDeadline(ctx context.Context, listingID string, hours int) (models.Listing, error) {
	if hours <= 0 {
		return models.Listing{}, fmt.Errorf("%w: hours must be positive", ErrValidation)
	}
	l, err := s.listings.ExtendDeadline(listingID, hours)
	if err != nil {
		return models.Listing{}, ErrListingNotFound
	}
	s.log.Info("pickup deadline extended",
		zap.String("listing_id", listingID),
		zap.Int("hours", hours),
		zap.Time("available_until", l.AvailableUntil))
	return l, nil
}

// Retract takes the listing off the market and cancels every active
// reservation referencing it.
func (s *catalogService) Retract(ctx context.Context, listingID string) (models.Listing, error) {
	l, err := s.listings.Retract(listingID, s.now())
	if err != nil {
		return models.Listing{}, ErrListingNotFound
	}
	cancelled := s.ledger.CancelAllForListing(listingID)
	s.log.Info("listing retracted",
		zap.String("listing_id", listingID),
		zap.Int("reservations_cancelled", cancelled))
	return l, nil
}
