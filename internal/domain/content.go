package domain

import "time"

type ContentType string

const (
	ContentTypeSocial   ContentType = "social"
	ContentTypeEmail    ContentType = "email"
	ContentTypeBlog     ContentType = "blog"
	ContentTypeLanding  ContentType = "landing"
	ContentTypeProposal ContentType = "proposal"
)

// ContentItem is a piece of written marketing content aimed at an ICP.
// ICPID may point at an ICP that no longer exists.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Type        ContentType `json:"type"`
	ICPID       string      `json:"icpId"`
	CreatedAt   time.Time   `json:"createdAt"`
	AIGenerated bool        `json:"aiGenerated"`
}

func (c ContentItem) EntityID() string { return c.ID }
func (c ContentItem) CreatedTime() time.Time { return c.CreatedAt }

func (c ContentItem) WithID(id string, createdAt time.Time) ContentItem {
	c.ID = id
	c.CreatedAt = createdAt
	return c
}
