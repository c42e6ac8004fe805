package local

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"aiva/internal/domain"
	"aiva/internal/storage/local/mocks"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	kv     *KV
	logger *slog.Logger
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	kv, err := Open(filepath.Join(s.T().TempDir(), "aiva.db"))
	s.Require().NoError(err)
	s.kv = kv
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.kv.Close()
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestCreate_RoundTrip() {
	repo := NewRepository[domain.ICP](s.kv, domain.CollectionICPs, s.logger)

	created, err := repo.Create(s.ctx, domain.ICP{
		Name:         "Mid-market SaaS",
		Industry:     "Software",
		TechStack:    []string{"Go", "Postgres"},
		Location:     "EU",
		Persona:      []string{"CTO"},
		BusinessSize: "50-200",
		Tone:         "direct",
	})
	s.Require().NoError(err)
	s.Contains(created.ID, "icp-")
	s.False(created.CreatedAt.IsZero())
	s.Equal([]string{}, created.Designations)

	items, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(created, items[0])
}

func (s *RepositoryTestSuite) TestCreate_CalendarItemDefaultsToDraft() {
	repo := NewRepository[domain.CalendarItem](s.kv, domain.CollectionCalendarItems, s.logger)

	created, err := repo.Create(s.ctx, domain.CalendarItem{
		Title:    "Launch post",
		Date:     time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC),
		Platform: string(domain.PlatformLinkedIn),
	})
	s.Require().NoError(err)
	s.Equal(domain.CalendarStatusDraft, created.Status)

	items, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.CalendarItem{created}, items)
}

func (s *RepositoryTestSuite) TestCreate_IDsUniqueWithinSameMillisecond() {
	repo := NewRepository[domain.ContentItem](s.kv, domain.CollectionContents, s.logger)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	first, err := repo.Create(s.ctx, domain.ContentItem{Title: "a"})
	s.Require().NoError(err)
	second, err := repo.Create(s.ctx, domain.ContentItem{Title: "b"})
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.Equal("content-1704067200000", first.ID)
	s.Equal("content-1704067200001", second.ID)
}

func (s *RepositoryTestSuite) TestUpdate_ReplacesByID() {
	repo := NewRepository[domain.GraphicItem](s.kv, domain.CollectionGraphics, s.logger)

	created, err := repo.Create(s.ctx, domain.GraphicItem{Title: "hero", ImageURL: "https://img/1.png", Format: "png"})
	s.Require().NoError(err)

	created.Title = "hero v2"
	s.Require().NoError(repo.Update(s.ctx, created))

	items, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("hero v2", items[0].Title)
}

func (s *RepositoryTestSuite) TestUpdate_KeepsCreatedAtAndNormalizes() {
	repo := NewRepository[domain.Campaign](s.kv, domain.CollectionCampaigns, s.logger)

	created, err := repo.Create(s.ctx, domain.Campaign{Title: "Q2", Contents: []string{"content-1"}})
	s.Require().NoError(err)

	s.Require().NoError(repo.Update(s.ctx, domain.Campaign{ID: created.ID, Title: "Q2 revised"}))

	items, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Q2 revised", items[0].Title)
	s.True(created.CreatedAt.Equal(items[0].CreatedAt))
	s.Equal([]string{}, items[0].Contents)
	s.Equal([]string{}, items[0].Graphics)
	s.Equal([]string{}, items[0].CalendarItems)
}

func (s *RepositoryTestSuite) TestUpdate_MissingIDLeavesSlotUnchanged() {
	repo := NewRepository[domain.GraphicItem](s.kv, domain.CollectionGraphics, s.logger)

	_, err := repo.Create(s.ctx, domain.GraphicItem{Title: "hero"})
	s.Require().NoError(err)

	before, err := s.kv.Get(s.ctx, SlotKey(domain.CollectionGraphics))
	s.Require().NoError(err)

	err = repo.Update(s.ctx, domain.GraphicItem{ID: "graphic-missing", Title: "ghost"})
	s.ErrorIs(err, domain.ErrNotFound)

	after, err := s.kv.Get(s.ctx, SlotKey(domain.CollectionGraphics))
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *RepositoryTestSuite) TestDelete_Idempotent() {
	repo := NewRepository[domain.Campaign](s.kv, domain.CollectionCampaigns, s.logger)

	created, err := repo.Create(s.ctx, domain.Campaign{Title: "Q2"})
	s.Require().NoError(err)

	s.NoError(repo.Delete(s.ctx, created.ID))
	s.NoError(repo.Delete(s.ctx, created.ID))

	items, err := repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *RepositoryTestSuite) TestList_MissingSlotIsEmpty() {
	repo := NewRepository[domain.ICP](s.kv, domain.CollectionICPs, s.logger)

	items, err := repo.List(s.ctx)
	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *RepositoryTestSuite) TestList_MalformedSlotIsEmpty() {
	s.Require().NoError(s.kv.Put(s.ctx, SlotKey(domain.CollectionICPs), []byte("{not json")))
	repo := NewRepository[domain.ICP](s.kv, domain.CollectionICPs, s.logger)

	items, err := repo.List(s.ctx)
	s.NoError(err)
	s.Empty(items)
}

func (s *RepositoryTestSuite) TestCreate_WriteFailureReturnsError() {
	ctrl := gomock.NewController(s.T())
	slots := mocks.NewMockSlots(ctrl)
	repo := NewRepository[domain.ICP](slots, domain.CollectionICPs, s.logger)

	slots.EXPECT().Get(s.ctx, "aiva_icps").Return(nil, nil)
	slots.EXPECT().Put(s.ctx, "aiva_icps", gomock.Any()).Return(errors.New("quota exceeded"))

	created, err := repo.Create(s.ctx, domain.ICP{Name: "x"})
	s.Error(err)
	s.Empty(created.ID)
}
