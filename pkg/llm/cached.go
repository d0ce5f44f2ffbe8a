package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Completer is the contract the analysis layer depends on
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Store is a response cache keyed by prompt hash. Lookups are best effort;
// a miss or a failing backend just falls through to the endpoint.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// Cached decorates a Completer with a response cache
type Cached struct {
	inner Completer
	store Store
	ttl   time.Duration
}

// NewCached wraps a completer with the given store and TTL
func NewCached(inner Completer, store Store, ttl time.Duration) *Cached {
	return &Cached{inner: inner, store: store, ttl: ttl}
}

// Complete returns a cached response when available, otherwise delegates and
// stores the result.
func (c *Cached) Complete(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if cached, ok := c.store.Get(ctx, key); ok {
		return cached, nil
	}

	text, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.store.Set(ctx, key, text, c.ttl)
	return text, nil
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "llm:completion:" + hex.EncodeToString(sum[:])
}
