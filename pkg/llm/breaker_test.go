package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedProvider struct {
	calls   int
	failing bool
}

func (s *scriptedProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	s.calls++
	if s.failing {
		return "", errors.New("backend down")
	}
	return "ok", nil
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return s.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &scriptedProvider{failing: true}
	b := NewBreakerProvider(inner, 3, time.Minute, 0)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := b.Generate(ctx, "hi"); err == nil {
			t.Fatalf("call %d: expected failure", i)
		}
	}

	// Breaker is open now, backend must not be hit.
	callsBefore := inner.calls
	_, err := b.Generate(ctx, "hi")
	if !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected ErrBreakerOpen, got %v", err)
	}
	if inner.calls != callsBefore {
		t.Fatalf("backend called while breaker open")
	}
}

func TestBreakerProbesAfterCooldown(t *testing.T) {
	inner := &scriptedProvider{failing: true}
	b := NewBreakerProvider(inner, 2, 10*time.Millisecond, 0)

	ctx := context.Background()
	b.Generate(ctx, "hi")
	b.Generate(ctx, "hi")

	if _, err := b.Generate(ctx, "hi"); !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("expected breaker to be open, got %v", err)
	}

	time.Sleep(15 * time.Millisecond)
	inner.failing = false

	reply, err := b.Generate(ctx, "hi")
	if err != nil {
		t.Fatalf("probe should have succeeded: %v", err)
	}
	if reply != "ok" {
		t.Fatalf("unexpected reply %q", reply)
	}

	// Success closes the breaker again.
	if _, err := b.Generate(ctx, "hi"); err != nil {
		t.Fatalf("breaker should be closed: %v", err)
	}
}

func TestBreakerResetsCountOnSuccess(t *testing.T) {
	inner := &scriptedProvider{}
	b := NewBreakerProvider(inner, 2, time.Minute, 0)

	ctx := context.Background()
	inner.failing = true
	b.Generate(ctx, "hi")

	inner.failing = false
	if _, err := b.Generate(ctx, "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner.failing = true
	if _, err := b.Generate(ctx, "hi"); errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("breaker opened too early")
	}
}
