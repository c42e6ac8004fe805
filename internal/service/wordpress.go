package service

import (
	"context"
	"fmt"
	"log/slog"

	"aiva/internal/domain"
	"aiva/internal/wordpress"
)

// WordPressScheduler publishes calendar items to a WordPress site.
type WordPressScheduler struct {
	store     DataStore
	publisher PostPublisher
	logger    *slog.Logger
}

func NewWordPressScheduler(store DataStore, publisher PostPublisher, logger *slog.Logger) *WordPressScheduler {
	return &WordPressScheduler{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "wordpress_scheduler"),
	}
}

// Schedule posts the calendar item's content at the item's date and marks
// the item scheduled, or live when WordPress published it right away.
func (s *WordPressScheduler) Schedule(ctx context.Context, calendarItemID string) (*wordpress.Post, error) {
	item, ok := s.store.GetCalendarItemByID(calendarItemID)
	if !ok {
		return nil, fmt.Errorf("calendar item %s: %w", calendarItemID, domain.ErrNotFound)
	}
	if item.ContentID == "" {
		return nil, fmt.Errorf("calendar item %s has no content", calendarItemID)
	}
	content, ok := s.store.GetContentItemByID(item.ContentID)
	if !ok {
		return nil, fmt.Errorf("content %s: %w", item.ContentID, domain.ErrNotFound)
	}

	title := content.Title
	if title == "" {
		title = item.Title
	}
	post, err := s.publisher.CreatePost(ctx, wordpress.PostInput{
		Title:     title,
		Content:   content.Content,
		PublishAt: item.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %s: %w", calendarItemID, err)
	}

	item.Platform = domain.PlatformWordPress
	item.Status = domain.CalendarStatusScheduled
	if post.Status == wordpress.StatusPublish {
		item.Status = domain.CalendarStatusLive
	}
	if item.SocialMediaDetails != nil {
		details := *item.SocialMediaDetails
		details.PostURL = post.Link
		if item.Status == domain.CalendarStatusLive {
			details.ScheduledStatus = domain.ScheduledStatusPosted
		}
		item.SocialMediaDetails = &details
	}
	if err := s.store.UpdateCalendarItem(ctx, item); err != nil {
		return post, fmt.Errorf("mark %s %s: %w", calendarItemID, item.Status, err)
	}

	s.logger.Info("calendar item sent to wordpress",
		"calendar_item_id", calendarItemID,
		"post_id", post.ID,
		"status", item.Status,
	)
	return post, nil
}
