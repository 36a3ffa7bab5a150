// Package state is the client's persisted key-value blob store. A single key
// holds the serialized session slice; everything else the client keeps is
// memory-only and resets on restart.
package state

import "context"

// Repository is an opaque blob store keyed by string.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
