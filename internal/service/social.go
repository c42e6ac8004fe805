package service

import (
	"context"

	"aiva/internal/domain"
)

// ScheduleSocialMediaPost adds a calendar item describing a social post.
func (s *store) ScheduleSocialMediaPost(ctx context.Context, item domain.CalendarItem) (string, error) {
	return s.AddCalendarItem(ctx, item)
}

// GetSocialMediaPosts returns calendar items carrying social media details,
// restricted to platform unless it is empty.
func (s *store) GetSocialMediaPosts(platform domain.SocialMediaPlatform) []domain.CalendarItem {
	posts := []domain.CalendarItem{}
	for _, item := range s.calendar.all() {
		if !item.IsSocialPost() {
			continue
		}
		if platform != "" && item.SocialMediaDetails.Platform != platform {
			continue
		}
		posts = append(posts, item)
	}
	return posts
}

// ResolveCampaign resolves a campaign's id lists against the current
// collections. Ids that no longer resolve are dropped.
func (s *store) ResolveCampaign(id string) (domain.CampaignView, bool) {
	c, ok := s.campaigns.get(id)
	if !ok {
		return domain.CampaignView{}, false
	}

	view := domain.CampaignView{
		Campaign:      c,
		Contents:      resolve(c.Contents, s.contents.get),
		Graphics:      resolve(c.Graphics, s.graphics.get),
		CalendarItems: resolve(c.CalendarItems, s.calendar.get),
	}
	if icp, ok := s.icps.get(c.ICPID); ok {
		view.ICP = &icp
	}
	return view, true
}

func resolve[T any](ids []string, lookup func(string) (T, bool)) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := lookup(id); ok {
			out = append(out, v)
		}
	}
	return out
}
