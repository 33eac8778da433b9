package wizard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/randalmurphal/posekit/estimate"
	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/pose"
	"github.com/randalmurphal/posekit/pricing"
	"github.com/randalmurphal/posekit/probe"
	"github.com/randalmurphal/posekit/resolver"
)

// ErrNotResolved indicates a real call was attempted before a model was
// resolved for the session.
var ErrNotResolved = errors.New("no model resolved for this session")

// Chatter sends one completion and returns the reply text. A non-empty
// image is attached to the request; the wizard's vision step uses that,
// the text step passes nil.
type Chatter interface {
	Complete(ctx context.Context, id model.ID, prompt string, image []byte, mediaType string, maxTokens int) (string, error)
}

// Client is the transport a session runs against. The openai package's
// client satisfies it.
type Client interface {
	probe.Lister
	Chatter
}

// Session is one credential's wizard run: resolver state, pricing, and
// the transport, plus an ID for correlating diagnostics.
type Session struct {
	ID uuid.UUID

	client    Client
	resolver  *resolver.Resolver
	catalog   *pricing.Catalog
	estimator *estimate.Estimator
	logger    *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEstimator replaces the default estimator, mainly to pin the token
// counter in tests.
func WithEstimator(e *estimate.Estimator) SessionOption {
	return func(s *Session) {
		s.estimator = e
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session over an already-constructed resolver and
// catalog. The resolver should wrap the same client so availability and
// probing share the credential.
func NewSession(client Client, res *resolver.Resolver, catalog *pricing.Catalog, opts ...SessionOption) *Session {
	s := &Session{
		ID:        uuid.New(),
		client:    client,
		resolver:  res,
		catalog:   catalog,
		estimator: estimate.New(nil),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateCredential performs the key-validation step: one listing call.
// Failure means the key is bad or the service is unreachable; the step
// treats both the same way.
func (s *Session) ValidateCredential(ctx context.Context) error {
	_, err := probe.ListAvailable(ctx, s.client)
	if err != nil {
		s.logger.Warn("credential validation failed", "session", s.ID, "err", err)
	}
	return err
}

// ChooseMode switches the operating mode, re-resolving if the cached
// model is not admissible under the new mode.
func (s *Session) ChooseMode(ctx context.Context, mode model.Mode) (model.ID, error) {
	return s.resolver.SetMode(ctx, mode)
}

// Resolve picks a working model, honoring an optional explicit override.
func (s *Session) Resolve(ctx context.Context, override model.ID) (model.ID, error) {
	return s.resolver.Resolve(ctx, override)
}

// ResolvedModel returns the session's cached model, "" while unresolved.
func (s *Session) ResolvedModel() model.ID {
	return s.resolver.ResolvedModel()
}

// Mode returns the session's current operating mode.
func (s *Session) Mode() model.Mode {
	return s.resolver.Mode()
}

// rates fetches fresh rates for the resolved model; nil when unresolved
// or unpriced. Fetched per estimate so pricing-file edits show up.
func (s *Session) rates() *pricing.Rates {
	id := s.resolver.ResolvedModel()
	if id == "" {
		return nil
	}
	return s.catalog.Rates(id)
}

// EstimateVision projects the cost of the vision step for the image at
// imagePath. An unreadable image is estimated as 512x512 rather than
// failing; the estimate must always render.
func (s *Session) EstimateVision(imagePath string) estimate.Estimate {
	w, h := imageSize(imagePath)
	return s.estimator.Vision(s.rates(), w, h, pose.DescribePrompt(),
		s.resolver.Mode().AssumedOutputTokens)
}

// EstimateText projects the cost of the pose-synthesis step given the
// vision step's posture description and the user's rough description.
func (s *Session) EstimateText(postureDescription, userDescription string) estimate.Estimate {
	prompt := pose.PosePrompt(postureDescription, userDescription)
	return s.estimator.Text(s.rates(), prompt, s.resolver.Mode().AssumedOutputTokens)
}

// Generate runs the real two-call pipeline: describe the photo, then
// synthesize bone rotations from the description, then extract the pose
// from the reply. Unlike estimation, generation needs the actual image
// bytes and fails if they cannot be read.
func (s *Session) Generate(ctx context.Context, imagePath, userDescription string) (pose.Pose, error) {
	id := s.resolver.ResolvedModel()
	if id == "" {
		return nil, ErrNotResolved
	}
	maxTokens := s.resolver.Mode().AssumedOutputTokens

	img, mediaType, err := readImage(imagePath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vision call", "session", s.ID, "model", id, "image_bytes", len(img))
	posture, err := s.client.Complete(ctx, id, pose.DescribePrompt(), img, mediaType, maxTokens)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pose call", "session", s.ID, "model", id)
	reply, err := s.client.Complete(ctx, id, pose.PosePrompt(posture, userDescription), nil, "", maxTokens)
	if err != nil {
		return nil, err
	}

	p, err := pose.Extract(reply)
	if err != nil {
		return nil, err
	}
	s.logger.Info("pose extracted", "session", s.ID, "bones", len(p))
	return p, nil
}
