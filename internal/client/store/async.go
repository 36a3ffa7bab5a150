// Package store contains the client-side state containers: one store per
// domain, each the sole writer of its own state. Stores dispatch against the
// api.API adapter, track a {loading, error} pair per logical operation, and
// keep collections consistent with the server by re-fetching after every
// successful mutation instead of merging locally.
package store

// Async is the lifecycle pair of one logical operation. Starting an attempt
// always clears the prior error, so Loading and a stale Err are never set at
// the same time.
type Async struct {
	Loading bool
	Err     error
}

func (a *Async) begin() {
	a.Loading = true
	a.Err = nil
}

func (a *Async) fail(err error) {
	a.Loading = false
	a.Err = err
}

func (a *Async) finish() {
	a.Loading = false
	a.Err = nil
}
