package kv

import "context"

// Store is a local, synchronous key-value substrate. It is logically owned
// by the document store; no other component reads or writes it directly.
type Store interface {
	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
