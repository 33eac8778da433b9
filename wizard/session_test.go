package wizard

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/posekit/estimate"
	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/pose"
	"github.com/randalmurphal/posekit/pricing"
	"github.com/randalmurphal/posekit/probe"
	"github.com/randalmurphal/posekit/resolver"
	"github.com/randalmurphal/posekit/tokens"
)

// fakeClient is a scripted transport: every listed model pings fine, and
// Complete replies from a queue.
type fakeClient struct {
	available []model.ID
	listErr   error

	replies  []string
	prompts  []string
	images   [][]byte
	maxToks  []int
}

func (f *fakeClient) ListModels(ctx context.Context) ([]model.ID, error) {
	return f.available, f.listErr
}

func (f *fakeClient) Ping(ctx context.Context, id model.ID) error {
	return nil
}

func (f *fakeClient) Complete(ctx context.Context, id model.ID, prompt string, image []byte, mediaType string, maxTokens int) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, image)
	f.maxToks = append(f.maxToks, maxTokens)
	if len(f.replies) == 0 {
		return "", probe.ErrUnavailable
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSession(t *testing.T, f *fakeClient) *Session {
	t.Helper()
	prober := probe.NewProber(f, probe.WithBackoff(nil), probe.WithLogger(quiet()))
	res := resolver.New(f, prober, model.Balanced, resolver.WithLogger(quiet()))
	catalog := pricing.NewCatalog(filepath.Join(t.TempDir(), "pricing.json"))

	counter := tokens.NewCounterWithEncoding("no-such-encoding") // deterministic
	return NewSession(f, res, catalog,
		WithLogger(quiet()),
		WithEstimator(estimate.New(counter)),
	)
}

func TestValidateCredential(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})
	require.NoError(t, s.ValidateCredential(context.Background()))
}

func TestValidateCredentialBadKey(t *testing.T) {
	s := newTestSession(t, &fakeClient{listErr: probe.ErrInvalidCredential})
	err := s.ValidateCredential(context.Background())
	assert.ErrorIs(t, err, probe.ErrInvalidCredential)
}

func TestSessionResolveAndEstimate(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})

	id, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, model.GPT41Mini, id)
	assert.Equal(t, id, s.ResolvedModel())

	// Vision estimate for a missing image falls back to one 512x512 tile.
	est := s.EstimateVision(filepath.Join(t.TempDir(), "missing.png"))
	wantPromptTokens := estimatePromptTokens(pose.DescribePrompt())
	assert.Equal(t, 210+wantPromptTokens, est.InputTokens)
	assert.Equal(t, model.Balanced.AssumedOutputTokens, est.OutputTokens)
	assert.True(t, est.TotalUSD.Equal(est.InputUSD.Add(est.OutputUSD)))
	assert.False(t, est.TotalUSD.IsZero(), "resolved model should have seeded rates")

	// Text estimate uses the assumed output constant, not a measurement.
	textEst := s.EstimateText("leaning forward", "arms crossed")
	assert.Equal(t, model.Balanced.AssumedOutputTokens, textEst.OutputTokens)
	assert.Positive(t, textEst.InputTokens)
}

// estimatePromptTokens mirrors the fallback counter: ceil(len/4).
func estimatePromptTokens(s string) int {
	return (len(s) + 3) / 4
}

func TestEstimateBeforeResolveRendersZeroDollars(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})

	est := s.EstimateText("posture", "desc")
	assert.True(t, est.TotalUSD.IsZero())
	assert.Positive(t, est.InputTokens)
}

func TestChooseModeReresolves(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})

	id, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, model.GPT41Mini, id)

	id, err = s.ChooseMode(context.Background(), model.Quality)
	require.NoError(t, err)
	assert.Equal(t, model.GPT41, id)
	assert.Equal(t, model.Quality, s.Mode())
}

func TestGenerate(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "photo.png")
	// Not decodable as a real PNG, but Generate only needs bytes.
	require.NoError(t, os.WriteFile(imgPath, []byte("\x89PNG fake"), 0o644))

	f := &fakeClient{
		available: model.All,
		replies: []string{
			"The subject leans forward with the left arm raised.",
			"```json\n{\"upperarm01.L\": {\"x\": 45, \"y\": 0, \"z\": 0}}\n```",
		},
	}
	s := newTestSession(t, f)

	_, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)

	p, err := s.Generate(context.Background(), imgPath, "arm up")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, 45.0, p["upperarm01.L"].X)

	// First call carried the image, second carried the posture text.
	require.Len(t, f.prompts, 2)
	assert.NotEmpty(t, f.images[0])
	assert.Nil(t, f.images[1])
	assert.Contains(t, f.prompts[1], "leans forward")
	assert.Contains(t, f.prompts[1], "arm up")
	assert.Equal(t, model.Balanced.AssumedOutputTokens, f.maxToks[0])
}

func TestGenerateRequiresResolvedModel(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})
	_, err := s.Generate(context.Background(), "x.png", "")
	assert.ErrorIs(t, err, ErrNotResolved)
}

func TestGenerateUnreadableImageFails(t *testing.T) {
	s := newTestSession(t, &fakeClient{available: model.All})
	_, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)

	_, err = s.Generate(context.Background(), filepath.Join(t.TempDir(), "gone.png"), "")
	assert.Error(t, err)
}

func TestSessionIDsUnique(t *testing.T) {
	a := newTestSession(t, &fakeClient{available: model.All})
	b := newTestSession(t, &fakeClient{available: model.All})
	assert.NotEqual(t, a.ID, b.ID)
}
