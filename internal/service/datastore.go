package service

import (
	"context"

	"aiva/internal/domain"
)

// DataStore is the single data contract the application uses, regardless
// of which persistence backend is active.
type DataStore interface {
	ICPs() []domain.ICP
	GetICPByID(id string) (domain.ICP, bool)
	AddICP(ctx context.Context, icp domain.ICP) (string, error)
	UpdateICP(ctx context.Context, icp domain.ICP) error
	DeleteICP(ctx context.Context, id string) error

	ContentItems() []domain.ContentItem
	GetContentItemByID(id string) (domain.ContentItem, bool)
	AddContentItem(ctx context.Context, item domain.ContentItem) (string, error)
	UpdateContentItem(ctx context.Context, item domain.ContentItem) error
	DeleteContentItem(ctx context.Context, id string) error

	GraphicItems() []domain.GraphicItem
	GetGraphicItemByID(id string) (domain.GraphicItem, bool)
	AddGraphicItem(ctx context.Context, item domain.GraphicItem) (string, error)
	UpdateGraphicItem(ctx context.Context, item domain.GraphicItem) error
	DeleteGraphicItem(ctx context.Context, id string) error

	CalendarItems() []domain.CalendarItem
	GetCalendarItemByID(id string) (domain.CalendarItem, bool)
	AddCalendarItem(ctx context.Context, item domain.CalendarItem) (string, error)
	UpdateCalendarItem(ctx context.Context, item domain.CalendarItem) error
	DeleteCalendarItem(ctx context.Context, id string) error

	Campaigns() []domain.Campaign
	GetCampaignByID(id string) (domain.Campaign, bool)
	AddCampaign(ctx context.Context, c domain.Campaign) (string, error)
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error

	ScheduleSocialMediaPost(ctx context.Context, item domain.CalendarItem) (string, error)
	GetSocialMediaPosts(platform domain.SocialMediaPlatform) []domain.CalendarItem
	ResolveCampaign(id string) (domain.CampaignView, bool)
	RefreshData(ctx context.Context) error
}

var (
	_ DataStore = (*LocalDataStore)(nil)
	_ DataStore = (*RemoteDataStore)(nil)
)
