// Package store holds the client-side cache for each entity and coordinates
// mutations against the resource client. Each store is constructed and owned
// explicitly; stores share no state with each other.
//
// Every operation follows the same protocol: mark itself in flight and clear the
// store error, call the client, reconcile the cache in one locked step, and
// leave. A failure records a fixed, operation-specific message, logs the cause,
// and is reported according to the operation's Policy.
package store

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maxviazov/matchday/internal/api"
)

// ErrOperationFailed is what every failed store operation unwraps to. The cause
// (transport or rejection) is logged, not exposed.
var ErrOperationFailed = errors.New("operation failed")

// Policy says how a failed operation reaches its caller.
type Policy int

const (
	// Propagate returns the failure; used by mutations so the caller can react.
	Propagate Policy = iota
	// Absorb leaves the cache untouched and records the error; the returned
	// error is informational and may be ignored.
	Absorb
	// DegradeToEmpty returns an empty result and no error.
	DegradeToEmpty
)

func (p Policy) String() string {
	switch p {
	case Propagate:
		return "propagate"
	case Absorb:
		return "absorb"
	case DegradeToEmpty:
		return "degrade_to_empty"
	default:
		return "unknown"
	}
}

// OpError is the opaque failure of one store operation.
type OpError struct {
	Op      string
	Message string
	Policy  Policy
}

func (e *OpError) Error() string { return e.Message }
func (e *OpError) Unwrap() error { return ErrOperationFailed }

// Message returns the human-readable message of a store failure, or "" if err is not one.
func Message(err error) string {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Message
	}
	return ""
}

// Status is a snapshot of a store's shared flags.
// Loading is true while at least one operation is in flight. Err holds the
// message of the most recent failure and is cleared when any operation starts.
type Status struct {
	Loading bool
	Err     string
}

type op struct {
	name    string
	message string
	policy  Policy
}

// base carries the lock, status bookkeeping and logger shared by every store.
type base struct {
	mu       sync.RWMutex
	inflight int
	err      string
	page     api.Page
	log      zerolog.Logger
}

// Option tunes a store at construction.
type Option func(*base)

// WithPage sets the window used by the store's list fetch. The zero page means
// the collection's default.
func WithPage(p api.Page) Option {
	return func(b *base) { b.page = p }
}

func newBase(logger zerolog.Logger, component string, opts []Option) base {
	b := base{log: logger.With().Str("module", "store").Str("component", component).Logger()}
	for _, o := range opts {
		o(&b)
	}
	return b
}

func (b *base) begin() {
	b.mu.Lock()
	b.inflight++
	b.err = ""
	b.mu.Unlock()
}

func (b *base) end() {
	b.mu.Lock()
	b.inflight--
	b.mu.Unlock()
}

// fail records o's message, logs the cause, and builds the error handed to the caller.
func (b *base) fail(o op, cause error, id string) *OpError {
	b.mu.Lock()
	b.err = o.message
	b.mu.Unlock()

	ev := b.log.Error().Err(cause).Str("op", o.name).Str("policy", o.policy.String())
	if id != "" {
		ev = ev.Str("id", id)
	}
	if code := api.StatusCode(cause); code != 0 {
		ev = ev.Int("status", code)
	}
	ev.Msg(o.message)
	return &OpError{Op: o.name, Message: o.message, Policy: o.policy}
}

// Status reports the current loading flag and last error message.
func (b *base) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Status{Loading: b.inflight > 0, Err: b.err}
}
