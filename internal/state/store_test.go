package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/marquee/internal/review"
)

func TestStore_PendingBeforeUpdate(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	assert.True(t, snap.Pending())
	assert.True(t, snap.Dataset.Empty())
	assert.NoError(t, snap.LoadErr)
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	ds := review.NewDataset([]review.Review{
		{Author: "ana", Content: "works as advertised"},
		{Author: "ben", Content: "crashes every morning"},
	}, true)

	before := time.Now()
	s.Update(ds, nil)

	snap := s.Snapshot()
	require.False(t, snap.Pending())
	require.Len(t, snap.Dataset.All, 2)
	require.Len(t, snap.Dataset.Flagged, 1)
	assert.False(t, snap.LoadedAt.Before(before))
	assert.NoError(t, snap.LoadErr)

	// Returned snapshot should be independent of the stored one.
	snap.Dataset.All[0].Author = "mallory"
	assert.Equal(t, "ana", s.Snapshot().Dataset.All[0].Author)
}

func TestStore_UpdateErrorEmptiesDataset(t *testing.T) {
	var s Store
	s.Update(review.NewDataset([]review.Review{{Author: "ana", Content: "works as advertised"}}, false), nil)

	origErr := errors.New("boom")
	s.Update(review.Dataset{All: []review.Review{{Author: "ignored"}}}, origErr)

	snap := s.Snapshot()
	assert.False(t, snap.Pending())
	assert.True(t, snap.Dataset.Empty())
	require.ErrorIs(t, snap.LoadErr, origErr)
	assert.NotSame(t, origErr, snap.LoadErr, "Snapshot should wrap the stored error")
}
