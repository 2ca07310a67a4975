package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("invalid listing input")
	ErrListingNotFound = errors.New("listing not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotAUser        = errors.New("only users can reserve food")
	ErrNotAPartner     = errors.New("only partners can post food")

	// ErrUnavailable covers every failed reserve attempt; the wrapped
	// variants only differ in message so the UI can tell a sold-out item
	// from an ended pickup window.
	ErrUnavailable = errors.New("listing is unavailable")
	ErrSoldOut     = fmt.Errorf("%w: food is sold out or no longer offered", ErrUnavailable)
	ErrPickupEnded = fmt.Errorf("%w: pickup time has ended", ErrUnavailable)

	ErrInvalidCode = errors.New("invalid or already used reservation code")
)
