// Package state holds the photos screen state machine.
//
// # Overview
//
// PhotosViewModel sits between the photo repository and whatever renders the
// screen. It owns a single UIState value and is the only code that writes it.
//
// # States
//
//	            Refresh()                 fetch ok
//	  ┌──────────────────────────┐   ┌──────────────→ Success(photos)
//	  │                          ↓   │
//	Success / Error / Loading ─→ Loading
//	                                 │
//	                                 └──────────────→ Error
//	                                      fetch failed
//
// There is no terminal state; every state can be re-entered with Refresh.
// The view model calls Refresh once from its constructor.
//
// # Refresh Semantics
//
//  1. Loading is published under the lock before Refresh returns, so
//     observers see it before any outcome of that call.
//  2. The repository is called on a new goroutine.
//  3. A result becomes Success with the photos in server order. An empty list
//     is still Success.
//  4. Any error becomes Error. The cause (transport or protocol) is logged
//     with its kind and dropped from the state.
//
// Overlapping Refresh calls are not serialised and superseded fetches are not
// cancelled. Each commits when it completes, so the last completion wins even
// if it was issued first.
//
// # Observing State
//
//   - State(): latest value, Success payload copied
//   - Subscribe(): channel of the current value, then every transition in
//     commit order
//
// Publishing and fan-out happen under the write lock, so readers never see a
// torn value and subscribers see transitions in the order they were
// committed.
//
// # Shutdown
//
// Close cancels the context passed to the repository, closes subscriber
// channels and waits for in-flight fetches. Outcomes that arrive after Close
// are discarded.
package state
