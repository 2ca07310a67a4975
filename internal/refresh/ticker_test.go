package refresh

import (
	"context"
	"testing"
	"time"

	"github.com/Rafiffarihan13/SaveFood/internal/models"
	"github.com/Rafiffarihan13/SaveFood/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	listings := store.NewListingStore()
	listings.Insert(models.Listing{ID: "a", Stock: 1, AvailableUntil: now.Add(5 * time.Hour)})
	listings.Insert(models.Listing{ID: "b", Stock: 1, AvailableUntil: now.Add(30 * time.Minute)})
	listings.Insert(models.Listing{ID: "c", Stock: 0, AvailableUntil: now.Add(time.Hour)})
	listings.Insert(models.Listing{ID: "d", Stock: 3, AvailableUntil: now.Add(-time.Minute)})

	tk := NewTicker(listings, time.Minute, zap.NewNop())
	tk.now = func() time.Time { return now }

	s := tk.Snapshot()
	assert.Equal(t, Snapshot{Active: 2, Urgent: 1, SoldOut: 1, Expired: 1}, s)

	// The snapshot never mutates the stores.
	l, _ := listings.Get("d")
	assert.Equal(t, 3, l.Stock)
}

func TestRun_StopsOnCancel(t *testing.T) {
	tk := NewTicker(store.NewListingStore(), time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop after cancellation")
	}
}
