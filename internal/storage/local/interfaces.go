package local

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

// Slots is durable string-keyed storage holding one serialized value per key.
type Slots interface {
	// Get returns the stored value, or nil when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// Clear removes the key; clearing an unset key succeeds.
	Clear(ctx context.Context, key string) error
}
