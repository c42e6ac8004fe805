package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"aiva/internal/ai"
	"aiva/internal/domain"
	"aiva/internal/wordpress"
)

// Notifier receives the transient success/failure signal emitted after every
// data store operation. Implementations must not block the caller for long
// and must handle their own delivery errors.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// SnapshotRunner runs fn so that every read inside it sees one consistent
// view of the remote store.
type SnapshotRunner interface {
	WithSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type Generator interface {
	GenerateText(ctx context.Context, req ai.TextRequest) (string, error)
	GenerateImages(ctx context.Context, req ai.ImageRequest) ([]string, error)
}

type PostPublisher interface {
	CreatePost(ctx context.Context, in wordpress.PostInput) (*wordpress.Post, error)
}
