package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/marquee/internal/review"
)

// Snapshot represents the dataset as last seen by the loader.
type Snapshot struct {
	Dataset  review.Dataset
	Loaded   bool
	LoadedAt time.Time
	LoadErr  error
}

// Pending returns true until the one load attempt has finished.
func (s Snapshot) Pending() bool {
	return !s.Loaded
}

// Store coordinates the loader goroutine with the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of a load. When err is non-nil the dataset is
// replaced with an empty one so the wall renders its empty state.
func (s *Store) Update(ds review.Dataset, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loaded = true
	s.snapshot.LoadedAt = time.Now()
	if err != nil {
		s.snapshot.Dataset = review.Dataset{}
		s.snapshot.LoadErr = err
		return
	}
	s.snapshot.Dataset = cloneDataset(ds)
	s.snapshot.LoadErr = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Dataset = cloneDataset(s.snapshot.Dataset)
	if s.snapshot.LoadErr != nil {
		snap.LoadErr = fmt.Errorf("%w", s.snapshot.LoadErr)
	}
	return snap
}

func cloneDataset(ds review.Dataset) review.Dataset {
	return review.Dataset{
		All:     cloneReviews(ds.All),
		Normal:  cloneReviews(ds.Normal),
		Flagged: cloneReviews(ds.Flagged),
	}
}

func cloneReviews(items []review.Review) []review.Review {
	if len(items) == 0 {
		return nil
	}
	dup := make([]review.Review, len(items))
	copy(dup, items)
	return dup
}
