package domain

import "time"

// Entity is implemented by every record kept in a collection. WithID returns a
// normalized copy carrying the identifier (and creation time, where the entity
// has one) assigned by the persistence backend. CreatedTime is zero for
// entities without a creation time.
type Entity[T any] interface {
	EntityID() string
	CreatedTime() time.Time
	WithID(id string, createdAt time.Time) T
}

// Collection names, shared by both persistence backends.
const (
	CollectionICPs          = "icps"
	CollectionContents      = "contents"
	CollectionGraphics      = "graphics"
	CollectionCalendarItems = "calendar_items"
	CollectionCampaigns     = "campaigns"
)

// Collections lists every collection in load order.
var Collections = []string{
	CollectionICPs,
	CollectionContents,
	CollectionGraphics,
	CollectionCalendarItems,
	CollectionCampaigns,
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
