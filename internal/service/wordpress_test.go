package service

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
	"aiva/internal/service/mocks"
	"aiva/internal/storage/local"
	"aiva/internal/wordpress"
)

type WordPressSchedulerTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	kv        *local.KV
	store     *LocalDataStore
	publisher *mocks.MockPostPublisher
	scheduler *WordPressScheduler
	date      time.Time
}

func (s *WordPressSchedulerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kv, err := local.Open(filepath.Join(s.T().TempDir(), "aiva.db"))
	s.Require().NoError(err)
	s.kv = kv

	s.store = NewLocalDataStore(kv, nil, logger)
	s.publisher = mocks.NewMockPostPublisher(s.ctrl)
	s.scheduler = NewWordPressScheduler(s.store, s.publisher, logger)
	s.date = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *WordPressSchedulerTestSuite) TearDownTest() {
	s.kv.Close()
	s.ctrl.Finish()
}

func TestWordPressSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(WordPressSchedulerTestSuite))
}

func (s *WordPressSchedulerTestSuite) addItem(details *domain.SocialMediaDetails) string {
	contentID, err := s.store.AddContentItem(s.ctx, domain.ContentItem{
		Title:   "Paved roads",
		Content: "<p>Body</p>",
		Type:    domain.ContentTypeBlog,
	})
	s.Require().NoError(err)

	id, err := s.store.AddCalendarItem(s.ctx, domain.CalendarItem{
		Title:              "Blog: paved roads",
		Date:               s.date,
		ContentID:          contentID,
		Status:             domain.CalendarStatusReady,
		SocialMediaDetails: details,
	})
	s.Require().NoError(err)
	return id
}

func (s *WordPressSchedulerTestSuite) TestSchedule_FutureMarksScheduled() {
	id := s.addItem(nil)

	s.publisher.EXPECT().CreatePost(gomock.Any(), wordpress.PostInput{
		Title:     "Paved roads",
		Content:   "<p>Body</p>",
		PublishAt: s.date,
	}).Return(&wordpress.Post{ID: 7, Status: wordpress.StatusFuture, Link: "https://blog/?p=7"}, nil)

	post, err := s.scheduler.Schedule(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(7), post.ID)

	item, ok := s.store.GetCalendarItemByID(id)
	s.Require().True(ok)
	s.Equal(domain.CalendarStatusScheduled, item.Status)
	s.Equal(domain.PlatformWordPress, item.Platform)
}

func (s *WordPressSchedulerTestSuite) TestSchedule_PublishedMarksLive() {
	id := s.addItem(&domain.SocialMediaDetails{
		Caption:         "New post",
		Hashtags:        []string{},
		ScheduledStatus: domain.ScheduledStatusPending,
	})

	s.publisher.EXPECT().CreatePost(gomock.Any(), gomock.Any()).
		Return(&wordpress.Post{ID: 8, Status: wordpress.StatusPublish, Link: "https://blog/paved-roads"}, nil)

	_, err := s.scheduler.Schedule(s.ctx, id)
	s.Require().NoError(err)

	item, _ := s.store.GetCalendarItemByID(id)
	s.Equal(domain.CalendarStatusLive, item.Status)
	s.Require().NotNil(item.SocialMediaDetails)
	s.Equal(domain.ScheduledStatusPosted, item.SocialMediaDetails.ScheduledStatus)
	s.Equal("https://blog/paved-roads", item.SocialMediaDetails.PostURL)
}

func (s *WordPressSchedulerTestSuite) TestSchedule_PublishFailureKeepsItem() {
	id := s.addItem(nil)
	before, _ := s.store.GetCalendarItemByID(id)

	s.publisher.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, errors.New("401 unauthorized"))

	_, err := s.scheduler.Schedule(s.ctx, id)
	s.Require().Error(err)

	after, _ := s.store.GetCalendarItemByID(id)
	s.Equal(before, after)
}

func (s *WordPressSchedulerTestSuite) TestSchedule_UnknownItem() {
	_, err := s.scheduler.Schedule(s.ctx, "calendar-missing")
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *WordPressSchedulerTestSuite) TestSchedule_ItemWithoutContent() {
	id, err := s.store.AddCalendarItem(s.ctx, domain.CalendarItem{Title: "Empty", Date: s.date})
	s.Require().NoError(err)

	_, err = s.scheduler.Schedule(s.ctx, id)
	s.Require().Error(err)
}
