// Package resolver implements the tiered read-resolution protocol used by
// every repository: primary store, then seed artifact, then an in-process
// default. It is a strict fallback chain, not a cache — every call
// re-attempts the primary store and nothing is memoized.
package resolver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// Tier is one resolution step. A returned error means "continue to the
// next tier"; it is never surfaced to the caller.
type Tier[T any] func(ctx context.Context) (T, error)

// Resolve evaluates tiers in order and returns the first value produced,
// or def when every tier fails. Tier order is fixed and must not be
// reordered per call.
func Resolve[T any](ctx context.Context, def T, tiers ...Tier[T]) T {
	for _, tier := range tiers {
		if v, err := tier(ctx); err == nil {
			return v
		}
	}
	return def
}

// Seed returns a tier reading <dir>/seeds/<name>.json. A missing or
// malformed file falls through to the next tier rather than failing the
// request.
func Seed[T any](dir, name string) Tier[T] {
	return func(context.Context) (T, error) {
		var v T
		data, err := os.ReadFile(seedPath(dir, name))
		if err != nil {
			return v, err
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return v, err
		}
		return v, nil
	}
}

// WriteSeed serializes v to the seed location consulted by Seed, creating
// the directory if absent. This is the degraded-write path: the next read
// that misses the store observes the written value.
func WriteSeed(dir, name string, v any) error {
	if err := os.MkdirAll(filepath.Join(dir, "seeds"), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(seedPath(dir, name), data, 0o644)
}

func seedPath(dir, name string) string {
	return filepath.Join(dir, "seeds", name+".json")
}
