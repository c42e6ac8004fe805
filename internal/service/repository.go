package service

import (
	"context"

	"aiva/internal/domain"
)

// Repository is the persistence contract a collection is kept convergent
// with. Update returns domain.ErrNotFound for unknown ids; Delete of an
// unknown id succeeds.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

// UserScoped is a remote table whose rows are owned by a user.
type UserScoped[T any] interface {
	List(ctx context.Context, userID string) ([]T, error)
	Insert(ctx context.Context, userID string, item T) (T, error)
	Update(ctx context.Context, userID string, item T) error
	Delete(ctx context.Context, userID, id string) error
}

// scoped binds a UserScoped table to the currently signed-in user.
type scoped[T any] struct {
	table UserScoped[T]
	user  func() string
}

func (s scoped[T]) List(ctx context.Context) ([]T, error) {
	userID := s.user()
	if userID == "" {
		return nil, domain.ErrNoUser
	}
	return s.table.List(ctx, userID)
}

func (s scoped[T]) Create(ctx context.Context, item T) (T, error) {
	userID := s.user()
	if userID == "" {
		var zero T
		return zero, domain.ErrNoUser
	}
	return s.table.Insert(ctx, userID, item)
}

func (s scoped[T]) Update(ctx context.Context, item T) error {
	userID := s.user()
	if userID == "" {
		return domain.ErrNoUser
	}
	return s.table.Update(ctx, userID, item)
}

func (s scoped[T]) Delete(ctx context.Context, id string) error {
	userID := s.user()
	if userID == "" {
		return domain.ErrNoUser
	}
	return s.table.Delete(ctx, userID, id)
}
