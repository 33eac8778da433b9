package resolver

import (
	"context"
	"log/slog"
	"sync"

	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/probe"
)

// Resolver holds the session's resolved-model state. Construct one per
// session and inject it into consumers; the cached choice is never
// global. Safe for concurrent use.
type Resolver struct {
	lister probe.Lister
	prober *probe.Prober
	logger *slog.Logger

	mu       sync.Mutex
	gen      uint64
	mode     model.Mode
	resolved model.ID // "" while unresolved
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for resolution decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates an unresolved resolver for the given mode.
func New(lister probe.Lister, prober *probe.Prober, mode model.Mode, opts ...Option) *Resolver {
	r := &Resolver{
		lister: lister,
		prober: prober,
		logger: slog.Default(),
		mode:   mode,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolvedModel returns the cached model, or "" while unresolved. When
// non-empty the identifier answered a live probe since it was cached and
// is either in the current mode's priority list or was an explicit
// override.
func (r *Resolver) ResolvedModel() model.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}

// Mode returns the current operating mode.
func (r *Resolver) Mode() model.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Invalidate clears the cached model.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = ""
	r.gen++
}

// Resolve picks a working model for the current mode and caches it.
//
// A recognized override present in the availability set is probed first,
// even when it is not in the mode's priority list: an explicit user
// choice always gets the first attempt. Otherwise candidates are probed
// in priority order and the first live one wins. There is no cross-mode
// fallback; when every candidate fails the caller gets a
// NoCompatibleModelError naming the required identifiers.
//
// Overlapping calls follow last-call-wins: only the most recent call may
// commit its result. A cancelled resolution leaves no partial state.
func (r *Resolver) Resolve(ctx context.Context, override model.ID) (model.ID, error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	mode := r.mode
	r.mu.Unlock()

	id, err := r.resolve(ctx, mode, override)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	if r.gen == gen {
		r.resolved = id
	}
	r.mu.Unlock()

	r.logger.Info("model resolved", "mode", mode.Name, "model", id, "override", override != "")
	return id, nil
}

func (r *Resolver) resolve(ctx context.Context, mode model.Mode, override model.ID) (model.ID, error) {
	avail, err := probe.ListAvailable(ctx, r.lister)
	if err != nil {
		return "", err
	}

	if override != "" && model.IsKnown(override) && avail.Has(override) {
		if r.prober.Probe(ctx, override) {
			return override, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		r.logger.Warn("override did not answer, falling back to mode priority",
			"override", override, "mode", mode.Name)
	}

	for _, id := range mode.Priority {
		if !avail.Has(id) {
			continue
		}
		if r.prober.Probe(ctx, id) {
			return id, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
	}

	return "", &NoCompatibleModelError{Mode: mode.Name, Required: mode.Priority}
}

// SetMode switches the operating mode. The cached model survives only if
// the new mode's priority list admits it; otherwise the cache is cleared
// and resolution re-runs immediately with no override. Returns the model
// in effect after the switch.
func (r *Resolver) SetMode(ctx context.Context, mode model.Mode) (model.ID, error) {
	r.mu.Lock()
	r.mode = mode
	if r.resolved != "" && mode.Allows(r.resolved) {
		id := r.resolved
		r.mu.Unlock()
		r.logger.Info("mode switched, cached model kept", "mode", mode.Name, "model", id)
		return id, nil
	}
	r.resolved = ""
	r.gen++
	r.mu.Unlock()

	r.logger.Info("mode switched, cache invalidated", "mode", mode.Name)
	return r.Resolve(ctx, "")
}
