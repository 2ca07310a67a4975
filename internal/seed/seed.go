// Package seed loads the demo dataset used when the service starts with an
// empty inventory.
package seed

import (
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"go.uber.org/zap"
)

// Load inserts the demo identities and listings. Deadlines are anchored to
// now so the urgent window and countdowns behave sensibly on a fresh start.
func Load(identities *store.IdentityStore, listings *store.ListingStore, log *zap.Logger, now time.Time) error {
	for _, id := range demoIdentities() {
		if err := identities.Insert(id); err != nil {
			return err
		}
	}
	for _, l := range demoListings(now) {
		listings.Insert(l)
	}
	log.Info("demo data loaded",
		zap.Int("identities", len(demoIdentities())),
		zap.Int("listings", len(demoListings(now))),
	)
	return nil
}

func demoIdentities() []models.Identity {
	return []models.Identity{
		{
			ID:           "user-1",
			Name:         "Andi",
			Email:        "andi@mail.com",
			Role:         models.RoleUser,
			RewardPoints: 0,
		},
		{
			ID:           "resto-1",
			Name:         "Bakery Sehat",
			Email:        "owner@bakerysehat.id",
			Role:         models.RolePartner,
			Address:      "Jl. Sudirman No. 12, Jakarta",
			VenueType:    "Bakery",
			Lat:          -6.208,
			Lng:          106.821,
			RewardPoints: 150,
		},
		{
			ID:           "resto-2",
			Name:         "Warung Nasi Ibu",
			Email:        "warung@nasibu.id",
			Role:         models.RolePartner,
			Address:      "Jl. Gatot Subroto No. 45, Jakarta",
			VenueType:    "Restoran",
			Lat:          -6.235,
			Lng:          106.814,
			RewardPoints: 80,
		},
		{
			ID:           "resto-3",
			Name:         "Kopi Pagi",
			Email:        "halo@kopipagi.id",
			Role:         models.RolePartner,
			Address:      "Jl. Kemang Raya No. 8, Jakarta",
			VenueType:    "Kafe",
			Lat:          -6.260,
			Lng:          106.813,
			RewardPoints: 250,
		},
	}
}

func demoListings(now time.Time) []models.Listing {
	return []models.Listing{
		{
			ID:              "food-1",
			PartnerID:       "resto-1",
			Name:            "Croissant Coklat",
			Description:     "Croissant isi coklat dari batch pagi, masih renyah.",
			Stock:           5,
			OriginalPrice:   20000,
			DiscountedPrice: 10000,
			AvailableUntil:  now.Add(2 * time.Hour),
			Category:        "Roti & Kue",
			PickupAddress:   "Jl. Sudirman No. 12, Jakarta",
			PickupLat:       -6.208,
			PickupLng:       106.821,
			CreatedAt:       now.Add(-30 * time.Minute),
		},
		{
			ID:              "food-3",
			PartnerID:       "resto-1",
			Name:            "Surprise Pastry Box",
			Description:     "Isi acak pastry hari ini, minimal 3 pcs.",
			Stock:           10,
			OriginalPrice:   45000,
			DiscountedPrice: 0,
			SurpriseMeal:    true,
			AvailableUntil:  now.Add(4 * time.Hour),
			Category:        "Roti & Kue",
			PickupAddress:   "Jl. Sudirman No. 12, Jakarta",
			PickupLat:       -6.208,
			PickupLng:       106.821,
			CreatedAt:       now.Add(-20 * time.Minute),
		},
		{
			ID:              "food-4",
			PartnerID:       "resto-2",
			Name:            "Roti Gandum",
			Description:     "Roti gandum utuh, baik untuk sarapan besok.",
			Stock:           2,
			OriginalPrice:   15000,
			DiscountedPrice: 0,
			AvailableUntil:  now.Add(30 * time.Minute),
			Category:        "Roti & Kue",
			PickupAddress:   "Jl. Gatot Subroto No. 45, Jakarta",
			PickupLat:       -6.235,
			PickupLng:       106.814,
			CreatedAt:       now.Add(-10 * time.Minute),
		},
	}
}
