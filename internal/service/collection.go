package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"aiva/internal/domain"
)

// collection is the canonical in-memory copy of one persisted collection.
// Changes are applied only after the repository confirms them, so a failed
// operation never leaves a partial change visible to readers.
type collection[T domain.Entity[T]] struct {
	mu       sync.RWMutex
	items    []T
	name     string
	repo     Repository[T]
	notifier Notifier
	logger   *slog.Logger
}

func newCollection[T domain.Entity[T]](name string, repo Repository[T], notifier Notifier, logger *slog.Logger) *collection[T] {
	return &collection[T]{
		items:    []T{},
		name:     name,
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("collection", name),
	}
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	items, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *collection[T]) clear() {
	c.replace([]T{})
}

func (c *collection[T]) add(ctx context.Context, item T) (string, error) {
	created, err := c.repo.Create(ctx, item)
	if err != nil {
		c.fail(ctx, domain.ActionCreate, "", err)
		return "", fmt.Errorf("add %s: %w", c.name, err)
	}

	id := created.EntityID()
	if id == "" {
		err := errors.New("backend returned no id")
		c.fail(ctx, domain.ActionCreate, "", err)
		return "", fmt.Errorf("add %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.items = append(slices.Clone(c.items), created)
	c.mu.Unlock()

	c.succeed(ctx, domain.ActionCreate, id)
	return id, nil
}

func (c *collection[T]) update(ctx context.Context, item T) error {
	id := item.EntityID()
	existing, ok := c.get(id)
	if !ok {
		err := fmt.Errorf("update %s %s: %w", c.name, id, domain.ErrNotFound)
		c.fail(ctx, domain.ActionUpdate, id, err)
		return err
	}
	// The creation time never changes after create.
	item = item.WithID(id, existing.CreatedTime())

	if err := c.repo.Update(ctx, item); err != nil {
		c.fail(ctx, domain.ActionUpdate, id, err)
		return fmt.Errorf("update %s %s: %w", c.name, id, err)
	}

	c.mu.Lock()
	next := slices.Clone(c.items)
	for i := range next {
		if next[i].EntityID() == id {
			next[i] = item
			break
		}
	}
	c.items = next
	c.mu.Unlock()

	c.succeed(ctx, domain.ActionUpdate, id)
	return nil
}

func (c *collection[T]) remove(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		c.fail(ctx, domain.ActionDelete, id, err)
		return fmt.Errorf("delete %s %s: %w", c.name, id, err)
	}

	c.mu.Lock()
	c.items = slices.DeleteFunc(slices.Clone(c.items), func(it T) bool {
		return it.EntityID() == id
	})
	c.mu.Unlock()

	c.succeed(ctx, domain.ActionDelete, id)
	return nil
}

func (c *collection[T]) succeed(ctx context.Context, action domain.Action, id string) {
	c.logger.Debug("operation succeeded", "action", action, "id", id)
	c.notify(ctx, domain.Notification{
		Level:      domain.NotificationSuccess,
		Action:     action,
		Collection: c.name,
		EntityID:   id,
		Message:    fmt.Sprintf("%s %s succeeded", action, c.name),
	})
}

func (c *collection[T]) fail(ctx context.Context, action domain.Action, id string, err error) {
	c.logger.Error("operation failed", "action", action, "id", id, "error", err)
	c.notify(ctx, domain.Notification{
		Level:      domain.NotificationFailure,
		Action:     action,
		Collection: c.name,
		EntityID:   id,
		Message:    err.Error(),
	})
}

func (c *collection[T]) notify(ctx context.Context, n domain.Notification) {
	if c.notifier == nil {
		return
	}
	n.Timestamp = time.Now().UTC()
	c.notifier.Notify(ctx, n)
}
