package kv

import (
	"context"
	"errors"
)

// ErrUnavailable reports that the backing store cannot be reached at all,
// as opposed to a single failed statement.
var ErrUnavailable = errors.New("storage unavailable")

// UpdateFunc receives the current value of a key (nil when absent) and
// returns the value to store. Returning an error aborts the update and
// leaves the stored value untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Repository is a string-keyed document store: the Go side of the device
// key-value storage the app persists into.
type Repository interface {
	// Get returns the value under key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every key with its value.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Update runs a read-modify-write of one key atomically and returns the
	// stored value.
	Update(ctx context.Context, key string, fn UpdateFunc) ([]byte, error)
}
