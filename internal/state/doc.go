// Package state provides thread-safe state sharing between the dataset loader
// and the UI.
//
// # Overview
//
// The review dataset is fetched and parsed exactly once, on a background
// goroutine that races against the first paint. The Store is the hand-off
// point: the loader writes the result once and the UI reads snapshots when it
// is told the load finished.
//
//	Producer (loader):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ review.Load()  │            │ spinner...      │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	└────────────────┘  (mutex)   │      ↓          │
//	                              │  render wall    │
//	                              └─────────────────┘
//
// # Update Semantics
//
//	// Success: the dataset replaces the empty one
//	store.Update(ds, nil)
//	→ snapshot.Dataset = ds
//	→ snapshot.Loaded = true
//
//	// Failure: the wall falls back to an empty dataset
//	store.Update(review.Dataset{}, err)
//	→ snapshot.Dataset = <empty>
//	→ snapshot.LoadErr = err
//	→ snapshot.Loaded = true
//
// A load failure is never fatal. The UI shows the empty state and the error
// goes to the log.
//
// # Defensive Copying
//
// Snapshot clones the review pools and wraps the stored error so the UI can
// hold on to a snapshot without sharing slices with the store.
//
// The zero Store is ready to use and reports a pending snapshot until the
// first Update.
package state
