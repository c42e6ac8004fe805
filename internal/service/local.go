package service

import (
	"context"
	"fmt"
	"log/slog"

	"aiva/internal/domain"
	"aiva/internal/storage/local"
)

// LocalDataStore keeps every collection in local durable slots. It needs no
// user and seeds sample data on first start.
type LocalDataStore struct {
	*store
	slots local.Slots
}

func NewLocalDataStore(slots local.Slots, notifier Notifier, logger *slog.Logger) *LocalDataStore {
	logger = logger.With("backend", "local")
	repos := Repositories{
		ICPs:          local.NewRepository[domain.ICP](slots, domain.CollectionICPs, logger),
		Contents:      local.NewRepository[domain.ContentItem](slots, domain.CollectionContents, logger),
		Graphics:      local.NewRepository[domain.GraphicItem](slots, domain.CollectionGraphics, logger),
		CalendarItems: local.NewRepository[domain.CalendarItem](slots, domain.CollectionCalendarItems, logger),
		Campaigns:     local.NewRepository[domain.Campaign](slots, domain.CollectionCampaigns, logger),
	}
	return &LocalDataStore{store: newStore(repos, notifier, logger), slots: slots}
}

// Start loads every collection and seeds sample data when no ICP exists yet.
func (s *LocalDataStore) Start(ctx context.Context) error {
	if err := s.RefreshData(ctx); err != nil {
		return fmt.Errorf("load local data: %w", err)
	}
	if s.icps.len() > 0 {
		return nil
	}

	s.logger.Info("no profiles found, seeding sample data")
	if err := seed(ctx, s); err != nil {
		return fmt.Errorf("seed local data: %w", err)
	}
	return nil
}

// Reset removes every persisted collection and empties the in-memory copy.
// The next Start seeds again.
func (s *LocalDataStore) Reset(ctx context.Context) error {
	for _, name := range domain.Collections {
		if err := s.slots.Clear(ctx, local.SlotKey(name)); err != nil {
			s.logger.Error("reset failed", "collection", name, "error", err)
			return fmt.Errorf("reset local data: %w", err)
		}
	}
	s.clear()
	s.logger.Info("local data reset")
	return nil
}
