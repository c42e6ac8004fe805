package service

import (
	"context"
	"log/slog"
	"time"

	"aiva/internal/domain"
)

// Repositories holds one repository per collection.
type Repositories struct {
	ICPs          Repository[domain.ICP]
	Contents      Repository[domain.ContentItem]
	Graphics      Repository[domain.GraphicItem]
	CalendarItems Repository[domain.CalendarItem]
	Campaigns     Repository[domain.Campaign]
}

// store implements the operations shared by both DataStore variants.
type store struct {
	icps      *collection[domain.ICP]
	contents  *collection[domain.ContentItem]
	graphics  *collection[domain.GraphicItem]
	calendar  *collection[domain.CalendarItem]
	campaigns *collection[domain.Campaign]

	// snapshot wraps the load of all collections; nil runs fn directly.
	snapshot func(ctx context.Context, fn func(ctx context.Context) error) error
	notifier Notifier
	logger   *slog.Logger
}

func newStore(repos Repositories, notifier Notifier, logger *slog.Logger) *store {
	return &store{
		icps:      newCollection(domain.CollectionICPs, repos.ICPs, notifier, logger),
		contents:  newCollection(domain.CollectionContents, repos.Contents, notifier, logger),
		graphics:  newCollection(domain.CollectionGraphics, repos.Graphics, notifier, logger),
		calendar:  newCollection(domain.CollectionCalendarItems, repos.CalendarItems, notifier, logger),
		campaigns: newCollection(domain.CollectionCampaigns, repos.Campaigns, notifier, logger),
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *store) ICPs() []domain.ICP                      { return s.icps.all() }
func (s *store) GetICPByID(id string) (domain.ICP, bool) { return s.icps.get(id) }

func (s *store) AddICP(ctx context.Context, icp domain.ICP) (string, error) {
	return s.icps.add(ctx, icp)
}

func (s *store) UpdateICP(ctx context.Context, icp domain.ICP) error {
	return s.icps.update(ctx, icp)
}

func (s *store) DeleteICP(ctx context.Context, id string) error {
	return s.icps.remove(ctx, id)
}

func (s *store) ContentItems() []domain.ContentItem { return s.contents.all() }

func (s *store) GetContentItemByID(id string) (domain.ContentItem, bool) {
	return s.contents.get(id)
}

func (s *store) AddContentItem(ctx context.Context, item domain.ContentItem) (string, error) {
	return s.contents.add(ctx, item)
}

func (s *store) UpdateContentItem(ctx context.Context, item domain.ContentItem) error {
	return s.contents.update(ctx, item)
}

func (s *store) DeleteContentItem(ctx context.Context, id string) error {
	return s.contents.remove(ctx, id)
}

func (s *store) GraphicItems() []domain.GraphicItem { return s.graphics.all() }

func (s *store) GetGraphicItemByID(id string) (domain.GraphicItem, bool) {
	return s.graphics.get(id)
}

func (s *store) AddGraphicItem(ctx context.Context, item domain.GraphicItem) (string, error) {
	return s.graphics.add(ctx, item)
}

func (s *store) UpdateGraphicItem(ctx context.Context, item domain.GraphicItem) error {
	return s.graphics.update(ctx, item)
}

func (s *store) DeleteGraphicItem(ctx context.Context, id string) error {
	return s.graphics.remove(ctx, id)
}

func (s *store) CalendarItems() []domain.CalendarItem { return s.calendar.all() }

func (s *store) GetCalendarItemByID(id string) (domain.CalendarItem, bool) {
	return s.calendar.get(id)
}

func (s *store) AddCalendarItem(ctx context.Context, item domain.CalendarItem) (string, error) {
	return s.calendar.add(ctx, item)
}

func (s *store) UpdateCalendarItem(ctx context.Context, item domain.CalendarItem) error {
	return s.calendar.update(ctx, item)
}

func (s *store) DeleteCalendarItem(ctx context.Context, id string) error {
	return s.calendar.remove(ctx, id)
}

func (s *store) Campaigns() []domain.Campaign { return s.campaigns.all() }

func (s *store) GetCampaignByID(id string) (domain.Campaign, bool) {
	return s.campaigns.get(id)
}

func (s *store) AddCampaign(ctx context.Context, c domain.Campaign) (string, error) {
	return s.campaigns.add(ctx, c)
}

func (s *store) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	return s.campaigns.update(ctx, c)
}

func (s *store) DeleteCampaign(ctx context.Context, id string) error {
	return s.campaigns.remove(ctx, id)
}

// RefreshData reloads every collection. The in-memory state changes only if
// all five loads succeed.
func (s *store) RefreshData(ctx context.Context) error {
	var (
		icps      []domain.ICP
		contents  []domain.ContentItem
		graphics  []domain.GraphicItem
		calendar  []domain.CalendarItem
		campaigns []domain.Campaign
	)

	load := func(ctx context.Context) error {
		var err error
		if icps, err = s.icps.load(ctx); err != nil {
			return err
		}
		if contents, err = s.contents.load(ctx); err != nil {
			return err
		}
		if graphics, err = s.graphics.load(ctx); err != nil {
			return err
		}
		if calendar, err = s.calendar.load(ctx); err != nil {
			return err
		}
		campaigns, err = s.campaigns.load(ctx)
		return err
	}

	start := time.Now()
	var err error
	if s.snapshot != nil {
		err = s.snapshot(ctx, load)
	} else {
		err = load(ctx)
	}
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		s.notify(ctx, domain.NotificationFailure, err.Error())
		return err
	}

	s.icps.replace(icps)
	s.contents.replace(contents)
	s.graphics.replace(graphics)
	s.calendar.replace(calendar)
	s.campaigns.replace(campaigns)

	s.logger.Info("data refreshed",
		"icps", len(icps),
		"contents", len(contents),
		"graphics", len(graphics),
		"calendar_items", len(calendar),
		"campaigns", len(campaigns),
		"duration", time.Since(start),
	)
	return nil
}

func (s *store) clear() {
	s.icps.clear()
	s.contents.clear()
	s.graphics.clear()
	s.calendar.clear()
	s.campaigns.clear()
}

func (s *store) notify(ctx context.Context, level domain.NotificationLevel, msg string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, domain.Notification{
		Level:     level,
		Action:    domain.ActionRefresh,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	})
}
