package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/status"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RewardPointsPerFreePickup is credited to the partner each time a free
// (zero-price) item is picked up.
const RewardPointsPerFreePickup = 10

// ReservationDetail pairs a reservation with its listing and the
// time-derived display state.
type ReservationDetail struct {
	Reservation  models.Reservation
	Listing      *models.Listing
	DisplayState status.State
}

// PartnerAnalytics aggregates a partner's dashboard numbers.
type PartnerAnalytics struct {
	PortionsSaved  int                      `json:"portions_saved"`
	RewardPoints   int                      `json:"reward_points"`
	UnclaimedItems int                      `json:"unclaimed_items"`
	History        []models.CompletedPickup `json:"history"`
}

type ReservationService interface {
	Reserve(ctx context.Context, userID, listingID string) (models.Reservation, error)
	VerifyAndComplete(ctx context.Context, code string) (models.Reservation, error)
	ReservationsForUser(ctx context.Context, userID string) ([]ReservationDetail, error)
	ActiveForPartner(ctx context.Context, partnerID string) ([]ReservationDetail, error)
	Analytics(ctx context.Context, partnerID string) (PartnerAnalytics, error)
}

type reservationService struct {
	ledger     *store.ReservationLedger
	listings   *store.ListingStore
	identities *store.IdentityStore
	log        *zap.Logger
	now        func() time.Time
}

func NewReservationService(ledger *store.ReservationLedger, listings *store.ListingStore, identities *store.IdentityStore, log *zap.Logger) ReservationService {
	return &reservationService{
		ledger:     ledger,
		listings:   listings,
		identities: identities,
		log:        log,
		now:        time.Now,
	}
}

// Reserve claims one unit of the listing's stock for the user. The
// availability check and the decrement happen atomically in the listing
// store, so a failed reserve never changes stock.
func (s *reservationService) Reserve(ctx context.Context, userID, listingID string) (models.Reservation, error) {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return models.Reservation{}, ErrNotAUser
	}

	now := s.now()
	if _, err := s.listings.ReserveOne(listingID, now); err != nil {
		switch {
		case errors.Is(err, store.ErrExpired):
			return models.Reservation{}, ErrPickupEnded
		default:
			// Unknown listings and empty ones read the same to the caller.
			return models.Reservation{}, ErrSoldOut
		}
	}

	r := models.Reservation{
		ID:        uuid.NewString(),
		UserID:    userID,
		ListingID: listingID,
		Status:    models.ReservationActive,
		CreatedAt: now,
	}
	// The ledger rejects a code already held by an active reservation;
	// with 36^6 codes a retry is almost never needed.
	for {
		r.Code = newReservationCode()
		r.QRPayload = models.QRPrefix + r.Code
		if err := s.ledger.Insert(r); err == nil {
			break
		} else if !errors.Is(err, store.ErrCodeTaken) {
			return models.Reservation{}, err
		}
	}

	s.log.Info("reservation created",
		zap.String("reservation_id", r.ID),
		zap.String("listing_id", listingID),
		zap.String("user_id", userID))
	return r, nil
}

// VerifyAndComplete redeems a reservation code presented at pickup. It
// accepts the raw code or the scannable payload and matches
// case-insensitively. A code verifies exactly once: the first success moves
// the reservation out of the active state.
func (s *reservationService) VerifyAndComplete(ctx context.Context, code string) (models.Reservation, error) {
	code = strings.TrimSpace(code)
	if rest, found := strings.CutPrefix(code, models.QRPrefix); found {
		code = rest
	}

	r, ok := s.ledger.FindActiveByCode(code)
	if !ok {
		return models.Reservation{}, ErrInvalidCode
	}

	r, err := s.ledger.SetStatus(r.ID, models.ReservationCompleted)
	if err != nil {
		return models.Reservation{}, ErrInvalidCode
	}

	listing, hasListing := s.listings.Get(r.ListingID)
	if hasListing && listing.Free() {
		if err := s.identities.AddPoints(listing.PartnerID, RewardPointsPerFreePickup); err != nil {
			s.log.Warn("failed to award reward points",
				zap.String("partner_id", listing.PartnerID), zap.Error(err))
		}
	}

	userName := ""
	if user, ok := s.identities.Get(r.UserID); ok {
		userName = user.Name
	}
	if hasListing {
		s.ledger.AppendHistory(models.CompletedPickup{
			ReservationID: r.ID,
			FoodName:      listing.Name,
			UserName:      userName,
			PartnerID:     listing.PartnerID,
			CompletedAt:   s.now(),
		})
	}

	s.log.Info("reservation completed",
		zap.String("reservation_id", r.ID),
		zap.String("listing_id", r.ListingID))
	return r, nil
}

func (s *reservationService) ReservationsForUser(ctx context.Context, userID string) ([]ReservationDetail, error) {
	role, ok := s.identities.Role(userID)
	if !ok || role != models.RoleUser {
		return nil, ErrUserNotFound
	}
	return s.detail(s.ledger.ListByUser(userID)), nil
}

// ActiveForPartner lists the active reservations against any of the
// partner's listings, for the pickup-management screen.
func (s *reservationService) ActiveForPartner(ctx context.Context, partnerID string) ([]ReservationDetail, error) {
	role, ok := s.identities.Role(partnerID)
	if !ok || role != models.RolePartner {
		return nil, ErrPartnerNotFound
	}
	ids := make(map[string]struct{})
	for _, l := range s.listings.ListByPartner(partnerID) {
		ids[l.ID] = struct{}{}
	}
	return s.detail(s.ledger.ListActiveByListings(ids)), nil
}

func (s *reservationService) Analytics(ctx context.Context, partnerID string) (PartnerAnalytics, error) {
	partner, ok := s.identities.Get(partnerID)
	if !ok || partner.Role != models.RolePartner {
		return PartnerAnalytics{}, ErrPartnerNotFound
	}

	history := s.ledger.HistoryForPartner(partnerID)

	now := s.now()
	unclaimed := 0
	for _, l := range s.listings.ListByPartner(partnerID) {
		if status.IsExpired(&l, now) && l.Stock > 0 {
			unclaimed++
		}
	}

	return PartnerAnalytics{
		PortionsSaved:  len(history),
		RewardPoints:   partner.RewardPoints,
		UnclaimedItems: unclaimed,
		History:        history,
	}, nil
}

func (s *reservationService) detail(reservations []models.Reservation) []ReservationDetail {
	now := s.now()
	out := make([]ReservationDetail, 0, len(reservations))
	for _, r := range reservations {
		var listing *models.Listing
		if l, ok := s.listings.Get(r.ListingID); ok {
			listing = &l
		}
		out = append(out, ReservationDetail{
			Reservation:  r,
			Listing:      listing,
			DisplayState: status.ForReservation(&r, listing, now),
		})
	}
	return out
}
