package local

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"aiva/internal/domain"
)

// KeyPrefix namespaces every slot written by this application.
const KeyPrefix = "aiva_"

// SlotKey returns the slot holding the given collection.
func SlotKey(collection string) string {
	return KeyPrefix + collection
}

var idPrefixes = map[string]string{
	domain.CollectionICPs:          "icp",
	domain.CollectionContents:      "content",
	domain.CollectionGraphics:      "graphic",
	domain.CollectionCalendarItems: "calendar",
	domain.CollectionCampaigns:     "campaign",
}

// Repository keeps one collection as a JSON array in a single slot. Every
// write replaces the whole array.
type Repository[T domain.Entity[T]] struct {
	slots      Slots
	collection string
	key        string
	idPrefix   string
	now        func() time.Time
	logger     *slog.Logger
}

func NewRepository[T domain.Entity[T]](slots Slots, collection string, logger *slog.Logger) *Repository[T] {
	prefix, ok := idPrefixes[collection]
	if !ok {
		prefix = collection
	}
	return &Repository[T]{
		slots:      slots,
		collection: collection,
		key:        SlotKey(collection),
		idPrefix:   prefix,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		logger:     logger.With("collection", collection),
	}
}

// List never fails on missing or malformed data; it returns an empty
// collection instead. Only slot read errors are returned.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	raw, err := r.slots.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return r.decode(raw), nil
}

func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	items, err := r.List(ctx)
	if err != nil {
		return zero, err
	}

	now := r.now()
	created := item.WithID(r.nextID(items, now), now)

	if err := r.save(ctx, append(items, created)); err != nil {
		return zero, err
	}
	return created, nil
}

func (r *Repository[T]) Update(ctx context.Context, item T) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(items, item.EntityID())
	if idx < 0 {
		return fmt.Errorf("update %s %s: %w", r.collection, item.EntityID(), domain.ErrNotFound)
	}

	updated := make([]T, len(items))
	copy(updated, items)
	updated[idx] = item.WithID(items[idx].EntityID(), items[idx].CreatedTime())

	return r.save(ctx, updated)
}

// Delete is idempotent: deleting an unknown id succeeds without writing.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	if indexOf(items, id) < 0 {
		return nil
	}

	kept := make([]T, 0, len(items)-1)
	for _, it := range items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	return r.save(ctx, kept)
}

func (r *Repository[T]) decode(raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.logger.Warn("discarding malformed slot", "key", r.key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func (r *Repository[T]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", r.collection, err)
	}
	return r.slots.Put(ctx, r.key, data)
}

// nextID derives the id from the creation time, stepping forward a
// millisecond at a time until it is unused within the collection.
func (r *Repository[T]) nextID(items []T, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", r.idPrefix, ms)
		if indexOf(items, id) < 0 {
			return id
		}
		ms++
	}
}

func indexOf[T domain.Entity[T]](items []T, id string) int {
	for i, it := range items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}
