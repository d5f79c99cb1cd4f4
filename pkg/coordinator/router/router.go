package router

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/coordinator/pkg/coordinator/internal"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/navigation"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// EntryPoints holds the start function of every feature module, one field
// per destination variant. A nil field means the destination is not
// available; navigating to it is logged and ignored.
type EntryPoints struct {
	MainModule         func(host navigation.Host, payload *navigation.MainModulePayload) error
	CoordinatorExample func(host navigation.Host, payload *navigation.CoordinatorExamplePayload) error
}

// Stats counts transitions handled by a Router.
type Stats struct {
	Dispatched   uint64 // Entry point invoked and host presented the screen
	Unrecognized uint64 // Unknown identifier or destination without an entry point
	Failed       uint64 // Entry point returned an error
}

// Router dispatches destinations to feature entry points.
// It is not safe for concurrent navigation; Stats may be read from any goroutine.
type Router struct {
	entries EntryPoints
	stack   *Stack
	logger  *slog.Logger

	dispatched   atomic.Uint64
	unrecognized atomic.Uint64
	failed       atomic.Uint64
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for transition logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHistoryLimit bounds the number of entries kept for Back. Zero means
// unbounded. A limit of 1 keeps only the current screen, so Back always
// reports false.
func WithHistoryLimit(limit int) Option {
	return func(r *Router) {
		r.stack = NewStack(limit)
	}
}

// New creates a Router dispatching to entries.
func New(entries EntryPoints, opts ...Option) *Router {
	r := &Router{
		entries: entries,
		stack:   NewStack(0),
		logger:  internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate invokes the entry point registered for dest, passing its payload.
func (r *Router) Navigate(host navigation.Host, dest navigation.Destination) error {
	return r.navigate(host, dest, uuid.NewString(), true)
}

// ChangeActivity resolves identifier and payload with navigation.Resolve
// and navigates to the result. Unknown identifiers are logged and ignored.
func (r *Router) ChangeActivity(host navigation.Host, identifier string, payload any) error {
	requestID := uuid.NewString()

	dest, res := navigation.Resolve(identifier, payload)
	switch res {
	case navigation.Unrecognized:
		r.unrecognized.Inc()
		r.logger.Warn("Unrecognized destination identifier",
			"request_id", requestID,
			"identifier", identifier)
		return nil
	case navigation.ResolvedDroppedPayload:
		r.logger.Warn("Dropping payload of unsupported type",
			"request_id", requestID,
			"identifier", identifier,
			"payload_type", fmt.Sprintf("%T", payload))
	}

	return r.navigate(host, dest, requestID, true)
}

// Back pops the current destination and presents the previous one again.
// It returns false when fewer than two destinations have been presented.
func (r *Router) Back(host navigation.Host) (bool, error) {
	if r.stack.Len() < 2 {
		return false, nil
	}

	current := r.stack.Pop()
	previous := r.stack.Peek()

	if err := r.navigate(host, previous.Destination, uuid.NewString(), false); err != nil {
		r.stack.Push(current.Destination, current.RequestID)
		return false, err
	}
	return true, nil
}

// History returns the navigation stack.
func (r *Router) History() *Stack {
	return r.stack
}

// Stats returns a snapshot of the transition counters.
func (r *Router) Stats() Stats {
	return Stats{
		Dispatched:   r.dispatched.Load(),
		Unrecognized: r.unrecognized.Load(),
		Failed:       r.failed.Load(),
	}
}

func (r *Router) navigate(host navigation.Host, dest navigation.Destination, requestID string, record bool) error {
	handled, err := r.dispatch(host, dest)

	if !handled {
		r.unrecognized.Inc()
		r.logger.Warn("No entry point for destination",
			"request_id", requestID,
			"destination", navigation.Describe(dest))
		return nil
	}

	if err != nil {
		r.failed.Inc()
		r.logger.Error("Transition failed",
			"request_id", requestID,
			"destination", navigation.Describe(dest),
			"error", err)
		return navigation.NewTransitionError(dest.ID(), requestID, err)
	}

	r.dispatched.Inc()
	if record {
		r.stack.Push(dest, requestID)
	}

	r.logger.Debug("Navigated",
		"request_id", requestID,
		"destination", navigation.Describe(dest),
		"history", r.stack.Len())

	return nil
}

// dispatch reports whether an entry point handled dest.
func (r *Router) dispatch(host navigation.Host, dest navigation.Destination) (bool, error) {
	switch d := dest.(type) {
	case navigation.MainModule:
		if r.entries.MainModule == nil {
			return false, nil
		}
		return true, r.entries.MainModule(host, d.Payload)
	case navigation.CoordinatorExample:
		if r.entries.CoordinatorExample == nil {
			return false, nil
		}
		return true, r.entries.CoordinatorExample(host, d.Payload)
	default:
		return false, nil
	}
}
