package domain

import "time"

type CalendarStatus string

const (
	CalendarStatusDraft     CalendarStatus = "draft"
	CalendarStatusReady     CalendarStatus = "ready"
	CalendarStatusScheduled CalendarStatus = "scheduled"
	CalendarStatusLive      CalendarStatus = "live"
)

type SocialMediaPlatform string

const (
	PlatformLinkedIn  SocialMediaPlatform = "LinkedIn"
	PlatformTwitter   SocialMediaPlatform = "Twitter"
	PlatformFacebook  SocialMediaPlatform = "Facebook"
	PlatformInstagram SocialMediaPlatform = "Instagram"
	PlatformPinterest SocialMediaPlatform = "Pinterest"
	PlatformTikTok    SocialMediaPlatform = "TikTok"
)

// SocialMediaPlatforms lists the closed set of supported platforms.
var SocialMediaPlatforms = []SocialMediaPlatform{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformFacebook,
	PlatformInstagram,
	PlatformPinterest,
	PlatformTikTok,
}

// Valid reports whether p is one of SocialMediaPlatforms.
func (p SocialMediaPlatform) Valid() bool {
	for _, known := range SocialMediaPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

type ScheduledStatus string

const (
	ScheduledStatusPending ScheduledStatus = "pending"
	ScheduledStatusPosted  ScheduledStatus = "posted"
	ScheduledStatusFailed  ScheduledStatus = "failed"
)

// SocialMediaDetails describes the social post a CalendarItem schedules.
// Platform usually mirrors CalendarItem.Platform but nothing enforces it.
type SocialMediaDetails struct {
	Platform        SocialMediaPlatform `json:"platform"`
	ScheduledTime   string              `json:"scheduledTime"`
	Caption         string              `json:"caption"`
	Hashtags        []string            `json:"hashtags"`
	ScheduledStatus ScheduledStatus     `json:"scheduledStatus"`
	PostURL         string              `json:"postUrl,omitempty"`
}

// PlatformWordPress is the CalendarItem.Platform value used for blog posts
// published through the WordPress integration.
const PlatformWordPress = "WordPress"

type CalendarItem struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Date               time.Time           `json:"date"`
	ContentID          string              `json:"contentId,omitempty"`
	GraphicID          string              `json:"graphicId,omitempty"`
	Platform           string              `json:"platform"`
	Status             CalendarStatus      `json:"status"`
	Assignee           string              `json:"assignee,omitempty"`
	SocialMediaDetails *SocialMediaDetails `json:"socialMediaDetails,omitempty"`
}

func (c CalendarItem) EntityID() string { return c.ID }
func (c CalendarItem) CreatedTime() time.Time { return time.Time{} }

// WithID ignores createdAt: calendar items carry a scheduled date instead.
func (c CalendarItem) WithID(id string, _ time.Time) CalendarItem {
	c.ID = id
	if c.Status == "" {
		c.Status = CalendarStatusDraft
	}
	return c
}

// IsSocialPost reports whether the item schedules a social media post.
func (c CalendarItem) IsSocialPost() bool {
	return c.SocialMediaDetails != nil
}
