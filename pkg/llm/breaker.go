package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ErrBreakerOpen is returned while the breaker is cooling down after too
// many consecutive provider failures.
var ErrBreakerOpen = fmt.Errorf("llm breaker open")

// BreakerProvider wraps an LLMProvider and stops calling the backend once it
// has failed maxFailures times in a row. After the cooldown elapses a single
// call is let through as a probe; success closes the breaker again.
type BreakerProvider struct {
	inner LLMProvider

	maxFailures int
	cooldown    time.Duration
	callTimeout time.Duration

	mu       sync.Mutex
	failures int
	openedAt time.Time
}

var _ LLMProvider = &BreakerProvider{}

func NewBreakerProvider(inner LLMProvider, maxFailures int, cooldown, callTimeout time.Duration) *BreakerProvider {
	if maxFailures <= 0 {
		maxFailures = 3
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	return &BreakerProvider{
		inner:       inner,
		maxFailures: maxFailures,
		cooldown:    cooldown,
		callTimeout: callTimeout,
	}
}

// allow reports whether a call may proceed right now.
func (b *BreakerProvider) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures < b.maxFailures {
		return true
	}
	// Open. Let one probe through once the cooldown has passed.
	if time.Since(b.openedAt) >= b.cooldown {
		b.openedAt = time.Now()
		return true
	}
	return false
}

func (b *BreakerProvider) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.failures = 0
		return
	}
	b.failures++
	if b.failures == b.maxFailures {
		b.openedAt = time.Now()
	}
}

func (b *BreakerProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	if !b.allow() {
		return "", ErrBreakerOpen
	}

	if b.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.callTimeout)
		defer cancel()
	}

	reply, err := b.inner.Chat(ctx, history, options...)
	b.record(err)
	return reply, err
}

func (b *BreakerProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return b.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}
