package service

import (
	"context"
	"time"

	"aiva/internal/domain"
)

// seed inserts one interrelated sample record into each collection.
func seed(ctx context.Context, ds DataStore) error {
	icpID, err := ds.AddICP(ctx, domain.ICP{
		Name:         "Tech Startup Founders",
		Industry:     "Technology",
		TechStack:    []string{"React", "Node.js", "AWS"},
		Location:     "United States",
		Persona:      []string{"Founder", "CTO"},
		BusinessSize: "1-50 employees",
		Tone:         "Professional yet approachable",
		Designations: []string{"CEO", "CTO", "Co-founder"},
	})
	if err != nil {
		return err
	}

	contentID, err := ds.AddContentItem(ctx, domain.ContentItem{
		Title:   "Scaling your startup's infrastructure",
		Content: "Growing fast means your stack has to keep up. Here are five ways to scale without rewriting everything.",
		Type:    domain.ContentTypeSocial,
		ICPID:   icpID,
	})
	if err != nil {
		return err
	}

	graphicID, err := ds.AddGraphicItem(ctx, domain.GraphicItem{
		Title:     "Infrastructure scaling infographic",
		ImageURL:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71",
		ContentID: contentID,
		Format:    "1080x1080",
	})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	postDate := now.AddDate(0, 0, 7).Truncate(time.Hour)
	calendarID, err := ds.AddCalendarItem(ctx, domain.CalendarItem{
		Title:     "LinkedIn post: scaling infrastructure",
		Date:      postDate,
		ContentID: contentID,
		GraphicID: graphicID,
		Platform:  string(domain.PlatformLinkedIn),
		Status:    domain.CalendarStatusReady,
		SocialMediaDetails: &domain.SocialMediaDetails{
			Platform:        domain.PlatformLinkedIn,
			ScheduledTime:   postDate.Format(time.RFC3339),
			Caption:         "Five ways to scale your startup's infrastructure.",
			Hashtags:        []string{"startups", "infrastructure", "scaling"},
			ScheduledStatus: domain.ScheduledStatusPending,
		},
	})
	if err != nil {
		return err
	}

	start := now.Truncate(24 * time.Hour)
	_, err = ds.AddCampaign(ctx, domain.Campaign{
		Title:         "Startup growth campaign",
		Description:   "Awareness campaign for early-stage technical founders.",
		ICPID:         icpID,
		StartDate:     start,
		EndDate:       start.AddDate(0, 1, 0),
		Contents:      []string{contentID},
		Graphics:      []string{graphicID},
		CalendarItems: []string{calendarID},
	})
	return err
}
