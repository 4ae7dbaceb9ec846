// Package app wires configuration, the dataset loader, shared state and the
// UI into the marquee program.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Validate config
//	└──────┬───────┘
//	       │
//	       ├─────> state.Store{}   Shared dataset container
//	       ├─────> StartLoad()     One background load of the CSV
//	       └─────> ui.Run()        Start the wall (blocks)
//
// The load is attempted exactly once. A failure is logged and recorded as an
// empty dataset so the wall shows its empty state instead of exiting.
package app
