// Package dblayer holds the entity repositories. Each repository owns one
// in-memory collection, loaded from and written through to the
// device-local store.
//
// Repositories are plain objects handed to the presentation layer; there
// is no shared global state. They accept entities at face value: callers
// are expected to run the validation package before issuing a mutation.
package dblayer

import (
	"context"
	"log/slog"

	"mypills/storage"
)

// loadKey reads the value stored under key into dst. An absent key leaves
// dst unchanged. A value that fails to decode, or that fails the ok
// check, is logged and dst keeps its prior value; bad stored data never
// surfaces to the caller.
func loadKey[T any](ctx context.Context, st *storage.Store, key string, dst *T, ok func(T) bool) {
	var loaded T
	found, err := st.Get(ctx, key, &loaded)
	if err != nil {
		slog.ErrorContext(ctx, "Ignoring stored value that failed to decode", slog.String("key", key), slog.Any("err", err))
		return
	}
	if !found {
		return
	}
	if ok != nil && !ok(loaded) {
		slog.ErrorContext(ctx, "Ignoring stored value with unexpected shape", slog.String("key", key))
		return
	}
	*dst = loaded
}

// allHaveIDs rejects decoded collections containing records without an
// identifier, so a stored value of the wrong shape doesn't replace good
// in-memory state with zero-valued records.
func allHaveIDs[T any](id func(T) string) func([]T) bool {
	return func(items []T) bool {
		for _, item := range items {
			if id(item) == "" {
				return false
			}
		}
		return true
	}
}
