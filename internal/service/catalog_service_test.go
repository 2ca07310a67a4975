package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput(until time.Time) CreateListingInput {
	return CreateListingInput{
		Name:            "Croissant Coklat",
		Stock:           5,
		OriginalPrice:   20000,
		DiscountedPrice: 10000,
		AvailableUntil:  until,
		Category:        "Roti",
		PickupAddress:   "Jl. Roti Enak No. 1",
	}
}

func TestCreateListing(t *testing.T) {
	f := newFixture(t)

	l, err := f.catalog.CreateListing(context.Background(), "resto-1", validInput(testNow.Add(4*time.Hour)))
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "resto-1", l.PartnerID)
	assert.Equal(t, 5, l.Stock)

	got, err := f.catalog.Listing(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)
}

func TestCreateListing_RoleCheck(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateListing(context.Background(), "user-1", validInput(testNow.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrNotAPartner)

	_, err = f.catalog.CreateListing(context.Background(), "ghost", validInput(testNow.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrNotAPartner)
}

func TestCreateListing_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateListingInput)
	}{
		{"missing name", func(in *CreateListingInput) { in.Name = "" }},
		{"zero stock", func(in *CreateListingInput) { in.Stock = 0 }},
		{"negative price", func(in *CreateListingInput) { in.OriginalPrice = -1; in.DiscountedPrice = -1 }},
		{"discount above original", func(in *CreateListingInput) { in.DiscountedPrice = in.OriginalPrice + 1 }},
		{"missing category", func(in *CreateListingInput) { in.Category = "" }},
		{"deadline in the past", func(in *CreateListingInput) { in.AvailableUntil = testNow.Add(-time.Minute) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(testNow.Add(time.Hour))
			tt.mutate(&in)
			_, err := f.catalog.CreateListing(ctx, "resto-1", in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.Empty(t, f.catalog.Listings(ctx), "failed creates must not store anything")
}

func TestExtendDeadline(t *testing.T) {
	f := newFixture(t)
	f.addListing("food-1", 1, 10000, testNow.Add(time.Hour))

	l, err := f.catalog.ExtendDeadline(context.Background(), "food-1", 2)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(3*time.Hour), l.AvailableUntil)

	_, err = f.catalog.ExtendDeadline(context.Background(), "food-1", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.catalog.ExtendDeadline(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUrgentListings(t *testing.T) {
	f := newFixture(t)
	f.addListing("food-1", 1, 10000, testNow.Add(30*time.Minute))
	f.addListing("food-2", 1, 10000, testNow.Add(5*time.Hour))
	f.addListing("food-3", 1, 10000, testNow.Add(90*time.Minute))

	urgent := f.catalog.UrgentListings(context.Background())
	require.Len(t, urgent, 2)
	assert.Equal(t, "food-1", urgent[0].ID)
	assert.Equal(t, "food-3", urgent[1].ID)
}

func TestListingsForPartner(t *testing.T) {
	f := newFixture(t)
	f.addListing("food-1", 1, 10000, testNow.Add(2*time.Hour))
	f.addListing("food-2", 1, 10000, testNow.Add(time.Hour))

	got, err := f.catalog.ListingsForPartner(context.Background(), "resto-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "food-2", got[0].ID, "soonest deadline first")

	_, err = f.catalog.ListingsForPartner(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrPartnerNotFound)
}

func TestNewReservationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := newReservationCode()
		assert.Len(t, code, 6)
		assert.Equal(t, strings.ToUpper(code), code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 90, "codes should be spread across the space")
}
