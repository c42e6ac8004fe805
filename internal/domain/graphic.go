package domain

import "time"

// GraphicItem is a generated or uploaded image, optionally tied to a ContentItem.
type GraphicItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	ContentID string    `json:"contentId,omitempty"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g GraphicItem) EntityID() string { return g.ID }
func (g GraphicItem) CreatedTime() time.Time { return g.CreatedAt }

func (g GraphicItem) WithID(id string, createdAt time.Time) GraphicItem {
	g.ID = id
	g.CreatedAt = createdAt
	return g
}
