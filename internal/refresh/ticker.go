// Package refresh re-evaluates listing statuses on a fixed interval so
// dashboards and countdowns stay current. The tick is strictly read-only:
// it classifies the current snapshot and logs it, never touching the stores.
package refresh

import (
	"context"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/status"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"go.uber.org/zap"
)

// Snapshot counts the listings per derived state at one instant.
type Snapshot struct {
	Active  int
	Urgent  int
	SoldOut int
	Expired int
}

type Ticker struct {
	listings *store.ListingStore
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewTicker(listings *store.ListingStore, interval time.Duration, log *zap.Logger) *Ticker {
	return &Ticker{listings: listings, interval: interval, log: log, now: time.Now}
}

// Run ticks until the context is cancelled.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := t.Snapshot()
			t.log.Debug("listing status refresh",
				zap.Int("active", s.Active),
				zap.Int("urgent", s.Urgent),
				zap.Int("sold_out", s.SoldOut),
				zap.Int("expired", s.Expired))
		}
	}
}

// Snapshot classifies every listing against the current time.
func (t *Ticker) Snapshot() Snapshot {
	now := t.now()
	var s Snapshot
	for _, l := range t.listings.List() {
		switch status.ForListing(&l, now) {
		case status.StateExpired:
			s.Expired++
		case status.StateSoldOut:
			s.SoldOut++
		default:
			s.Active++
			if l.AvailableUntil.Sub(now) < status.UrgentWindow {
				s.Urgent++
			}
		}
	}
	return s
}
