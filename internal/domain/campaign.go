package domain

import "time"

// Campaign aggregates content, graphics and calendar items by id. The id
// lists are not cleaned up when a referenced item is deleted.
type Campaign struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ICPID         string    `json:"icpId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Contents      []string  `json:"contents"`
	Graphics      []string  `json:"graphics"`
	CalendarItems []string  `json:"calendarItems"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c Campaign) EntityID() string { return c.ID }
func (c Campaign) CreatedTime() time.Time { return c.CreatedAt }

func (c Campaign) WithID(id string, createdAt time.Time) Campaign {
	c.ID = id
	c.CreatedAt = createdAt
	c.Contents = orEmpty(c.Contents)
	c.Graphics = orEmpty(c.Graphics)
	c.CalendarItems = orEmpty(c.CalendarItems)
	return c
}

// CampaignView is a Campaign with its id lists resolved. Ids that no longer
// resolve are dropped.
type CampaignView struct {
	Campaign      Campaign
	ICP           *ICP
	Contents      []ContentItem
	Graphics      []GraphicItem
	CalendarItems []CalendarItem
}
