package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/posekit/model"
)

// Lister returns the model identifiers a credential may use.
// Implementations make exactly one network call.
type Lister interface {
	ListModels(ctx context.Context) ([]model.ID, error)
}

// Pinger sends one minimal request to a model and reports failure.
// A nil return means a non-empty reply was observed.
type Pinger interface {
	Ping(ctx context.Context, id model.ID) error
}

// Set is a set of model identifiers.
type Set map[model.ID]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id model.ID) bool {
	_, ok := s[id]
	return ok
}

// ListAvailable lists the models the credential behind lister can use.
// Any failure is reported as ErrInvalidCredential: the caller's
// key-validation step cannot distinguish a bad key from an unreachable
// endpoint and treats both as "can't validate right now".
func ListAvailable(ctx context.Context, lister Lister) (Set, error) {
	ids, err := lister.ListModels(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	set := make(Set, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// DefaultBackoff is the retry schedule for transient ping failures: one
// initial attempt plus one retry after each delay.
var DefaultBackoff = []time.Duration{
	250 * time.Millisecond,
	500 * time.Millisecond,
	time.Second,
}

// Prober probes candidate models for liveness.
type Prober struct {
	pinger  Pinger
	backoff []time.Duration
	logger  *slog.Logger
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithBackoff overrides the retry schedule. An empty schedule means a
// single attempt with no retries.
func WithBackoff(schedule []time.Duration) ProberOption {
	return func(p *Prober) {
		p.backoff = schedule
	}
}

// WithLogger sets the logger for probe attempts.
func WithLogger(logger *slog.Logger) ProberOption {
	return func(p *Prober) {
		p.logger = logger
	}
}

// NewProber creates a prober over the given pinger.
func NewProber(pinger Pinger, opts ...ProberOption) *Prober {
	p := &Prober{
		pinger:  pinger,
		backoff: DefaultBackoff,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe reports whether id answered a minimal request. Transient
// failures are retried per the backoff schedule; permanent failures and
// cancellation return false immediately. A cancelled probe is neither a
// success nor a permanent verdict about the model.
func (p *Prober) Probe(ctx context.Context, id model.ID) bool {
	for attempt := 0; ; attempt++ {
		err := p.pinger.Ping(ctx, id)
		if err == nil {
			return true
		}
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		if IsPermanent(err) {
			p.logger.Warn("probe failed permanently", "model", id, "err", err)
			return false
		}
		if attempt >= len(p.backoff) {
			p.logger.Warn("probe retries exhausted", "model", id, "attempts", attempt+1, "err", err)
			return false
		}
		p.logger.Debug("probe retrying", "model", id, "attempt", attempt+1, "delay", p.backoff[attempt], "err", err)

		select {
		case <-time.After(p.backoff[attempt]):
		case <-ctx.Done():
			return false
		}
	}
}
