// Package directory owns read/write access to the three named collections
// (Users, Jobs, Applications) in the backing key-value store.
//
// Every read re-parses the full collection from the store and every mutation
// performs a full read-modify-write of the collection back to it. There is no
// caching and no locking: two execution contexts sharing the same backing
// store can race, and the last writer for a collection wins in full, even for
// unrelated record ids. Referential integrity across collections is preserved
// on write but never validated on read; dangling references are tolerated.
package directory

import (
	"context"

	"github.com/vijay-pawar-99/CampusHire/internal/codec"
	"github.com/vijay-pawar-99/CampusHire/internal/kvstore"
	"github.com/vijay-pawar-99/CampusHire/internal/shared"
)

// Store keys, matching the original localStorage layout.
const (
	KeyUsers        = "campushire_users"
	KeyJobs         = "campushire_jobs"
	KeyApplications = "campushire_applications"
)

// Store is the sole owner of the three collections. It holds an explicit
// kvstore handle injected by the host application.
type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// KV exposes the underlying store handle for collaborators that persist
// non-collection keys (the session mirror).
func (s *Store) KV() kvstore.Store {
	return s.kv
}

func getAll[T any](ctx context.Context, kv kvstore.Store, key string) ([]T, error) {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return codec.Decode[T](data)
}

func writeAll[T any](ctx context.Context, kv kvstore.Store, key string, records []T) error {
	data, err := codec.Encode(records)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, data)
}

// insert appends record to the collection under key. The caller supplies the
// id; the store does not check it for collisions.
func insert[T any](ctx context.Context, kv kvstore.Store, key string, record T) error {
	records, err := getAll[T](ctx, kv, key)
	if err != nil {
		return err
	}
	return writeAll(ctx, kv, key, append(records, record))
}

// update replaces the record matching idOf with the result of mutate applied
// to a copy of it. When no record matches, the collection is left untouched
// and shared.ErrNotFound is returned.
func update[T any](ctx context.Context, kv kvstore.Store, key string, idOf func(T) string, id string, mutate func(*T)) (T, error) {
	var zero T
	records, err := getAll[T](ctx, kv, key)
	if err != nil {
		return zero, err
	}
	for i := range records {
		if idOf(records[i]) != id {
			continue
		}
		merged := records[i]
		mutate(&merged)
		records[i] = merged
		if err := writeAll(ctx, kv, key, records); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, shared.ErrNotFound
}

// getByID scans the collection in insertion order for the first matching id.
func getByID[T any](ctx context.Context, kv kvstore.Store, key string, idOf func(T) string, id string) (T, error) {
	var zero T
	records, err := getAll[T](ctx, kv, key)
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if idOf(r) == id {
			return r, nil
		}
	}
	return zero, shared.ErrNotFound
}
