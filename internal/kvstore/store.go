// Package kvstore provides the backing key-value store for CampusHire
// collections. It is modeled after browser local storage: opaque text values
// under string keys, no transactions across keys, no locking. A whole
// collection is serialized under a single key, so the last writer for a key
// wins in full; concurrent writers are not detected.
package kvstore

import "context"

// Store is the explicit handle every component receives instead of reaching
// for ambient global state. Construction and teardown belong to the host
// application.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}
