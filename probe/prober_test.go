package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/randalmurphal/posekit/model"
)

// scriptedPinger returns errs in order, then nil forever.
type scriptedPinger struct {
	errs  []error
	calls int
}

func (s *scriptedPinger) Ping(ctx context.Context, id model.ID) error {
	s.calls++
	if len(s.errs) == 0 {
		return nil
	}
	err := s.errs[0]
	s.errs = s.errs[1:]
	return err
}

type scriptedLister struct {
	ids []model.ID
	err error
}

func (s *scriptedLister) ListModels(ctx context.Context) ([]model.ID, error) {
	return s.ids, s.err
}

func quietProber(p Pinger, schedule []time.Duration) *Prober {
	return NewProber(p,
		WithBackoff(schedule),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// fastBackoff keeps retry tests quick.
var fastBackoff = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

func TestListAvailable(t *testing.T) {
	set, err := ListAvailable(context.Background(), &scriptedLister{
		ids: []model.ID{model.GPT41, model.GPT4oMini, "ft:custom-thing"},
	})
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if !set.Has(model.GPT41) || !set.Has(model.GPT4oMini) {
		t.Errorf("set missing listed models: %v", set)
	}
	// Unknown identifiers are kept; resolution intersects with the
	// mode's priority list anyway.
	if !set.Has("ft:custom-thing") {
		t.Error("unknown identifier dropped from availability set")
	}
	if set.Has(model.O3) {
		t.Error("set contains model the credential cannot use")
	}
}

func TestListAvailableFailureIsInvalidCredential(t *testing.T) {
	_, err := ListAvailable(context.Background(), &scriptedLister{
		err: errors.New("connection refused"),
	})
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("err = %v, want ErrInvalidCredential", err)
	}
}

func TestProbeSuccessFirstAttempt(t *testing.T) {
	p := &scriptedPinger{}
	if !quietProber(p, fastBackoff).Probe(context.Background(), model.GPT41) {
		t.Fatal("Probe = false, want true")
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestProbePermanentFailureShortCircuits(t *testing.T) {
	permanents := []error{
		NewError("ping", model.GPT41, ErrInvalidCredential, true),
		ErrForbidden,
		ErrQuotaExhausted,
	}
	for _, perr := range permanents {
		p := &scriptedPinger{errs: []error{perr, nil, nil, nil}}
		if quietProber(p, fastBackoff).Probe(context.Background(), model.GPT41) {
			t.Errorf("%v: Probe = true, want false", perr)
		}
		if p.calls != 1 {
			t.Errorf("%v: calls = %d, want exactly 1 (no retry)", perr, p.calls)
		}
	}
}

func TestProbeTransientFailureRetriesFullSchedule(t *testing.T) {
	rl := NewError("ping", model.GPT41, ErrRateLimited, false)
	p := &scriptedPinger{errs: []error{rl, rl, rl, rl, rl, rl}}

	if quietProber(p, fastBackoff).Probe(context.Background(), model.GPT41) {
		t.Fatal("Probe = true, want false after exhausting retries")
	}
	if want := len(fastBackoff) + 1; p.calls != want {
		t.Errorf("calls = %d, want %d", p.calls, want)
	}
}

func TestProbeTransientThenSuccess(t *testing.T) {
	p := &scriptedPinger{errs: []error{ErrRateLimited, ErrUnavailable}}
	if !quietProber(p, fastBackoff).Probe(context.Background(), model.GPT41) {
		t.Fatal("Probe = false, want true after transient failures clear")
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want 3", p.calls)
	}
}

func TestProbeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptedPinger{errs: []error{ctx.Err()}}
	if quietProber(p, fastBackoff).Probe(ctx, model.GPT41) {
		t.Fatal("Probe = true on cancelled context")
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestIsPermanent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"wrapped auth", NewError("ping", model.O3, ErrInvalidCredential, true), true},
		{"sentinel forbidden", ErrForbidden, true},
		{"sentinel quota", ErrQuotaExhausted, true},
		{"rate limited", ErrRateLimited, false},
		{"wrapped transient", NewError("ping", model.O3, ErrUnavailable, false), false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermanent(tt.err); got != tt.want {
				t.Errorf("IsPermanent(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := NewError("ping", model.GPT4o, ErrRateLimited, false)
	if got := err.Error(); got != "ping gpt-4o: rate limited" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is through wrap failed")
	}

	listErr := NewError("list_models", "", ErrInvalidCredential, true)
	if got := listErr.Error(); got != "list_models: credential rejected" {
		t.Errorf("Error() = %q", got)
	}
}
