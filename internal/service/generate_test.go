package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"aiva/internal/ai"
	"aiva/internal/domain"
	"aiva/internal/service/mocks"
	"aiva/internal/storage/local"
)

type ContentGeneratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	kv        *local.KV
	store     *LocalDataStore
	generator *mocks.MockGenerator
	service   *ContentGenerator
	icpID     string
}

func (s *ContentGeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	kv, err := local.Open(filepath.Join(s.T().TempDir(), "aiva.db"))
	s.Require().NoError(err)
	s.kv = kv

	s.store = NewLocalDataStore(kv, nil, logger)
	s.icpID, err = s.store.AddICP(s.ctx, domain.ICP{
		Name:         "Platform engineers",
		Industry:     "Fintech",
		Persona:      []string{"Staff engineer"},
		Designations: []string{"Head of Platform"},
		Tone:         "technical",
	})
	s.Require().NoError(err)

	s.generator = mocks.NewMockGenerator(s.ctrl)
	s.service = NewContentGenerator(s.store, s.generator, logger)
}

func (s *ContentGeneratorTestSuite) TearDownTest() {
	s.kv.Close()
	s.ctrl.Finish()
}

func TestContentGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(ContentGeneratorTestSuite))
}

func (s *ContentGeneratorTestSuite) TestGenerateContent_StoresAIGeneratedItem() {
	s.generator.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ai.TextRequest) (string, error) {
			s.Contains(req.Prompt, "a blog post")
			s.Contains(req.Prompt, "Platform engineers")
			s.Contains(req.Prompt, "Head of Platform")
			s.Contains(req.Prompt, "technical")
			return "  Ship faster with paved roads.\n", nil
		})

	item, err := s.service.GenerateContent(s.ctx, GenerateContentRequest{
		ICPID: s.icpID,
		Type:  domain.ContentTypeBlog,
		Topic: "Internal developer platforms",
	})
	s.Require().NoError(err)
	s.NotEmpty(item.ID)
	s.True(item.AIGenerated)
	s.Equal(s.icpID, item.ICPID)
	s.Equal("Internal developer platforms", item.Title)
	s.Equal("Ship faster with paved roads.", item.Content)
	s.Equal(domain.ContentTypeBlog, item.Type)

	s.Len(s.store.ContentItems(), 1)
}

func (s *ContentGeneratorTestSuite) TestGenerateContent_ForwardsProviderSettings() {
	temperature := float32(0.2)
	s.generator.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ai.TextRequest) (string, error) {
			s.Equal(ai.ProviderGemini, req.Provider)
			s.Equal("gemini-key", req.APIKey)
			s.Equal("gemini-2.5-pro", req.Model)
			s.Require().NotNil(req.Temperature)
			s.InDelta(0.2, *req.Temperature, 0.0001)
			return "Generated", nil
		})

	_, err := s.service.GenerateContent(s.ctx, GenerateContentRequest{
		ICPID:       s.icpID,
		Topic:       "Launch",
		Provider:    ai.ProviderGemini,
		APIKey:      "gemini-key",
		Model:       "gemini-2.5-pro",
		Temperature: &temperature,
	})
	s.Require().NoError(err)
}

func (s *ContentGeneratorTestSuite) TestGenerateContent_UnknownProfile() {
	_, err := s.service.GenerateContent(s.ctx, GenerateContentRequest{ICPID: "icp-missing", Topic: "x"})
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrNotFound))
}

func (s *ContentGeneratorTestSuite) TestGenerateContent_EmptyResponseStoresNothing() {
	s.generator.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("chat completion: %w", domain.ErrEmptyResponse))

	_, err := s.service.GenerateContent(s.ctx, GenerateContentRequest{ICPID: s.icpID, Topic: "x"})
	s.Require().Error(err)
	s.True(errors.Is(err, domain.ErrEmptyResponse))
	s.Empty(s.store.ContentItems())
}

func (s *ContentGeneratorTestSuite) TestGenerateGraphic_StoresOneItemPerImage() {
	contentID, err := s.store.AddContentItem(s.ctx, domain.ContentItem{Title: "Post", ICPID: s.icpID})
	s.Require().NoError(err)

	s.generator.EXPECT().GenerateImages(gomock.Any(), ai.ImageRequest{
		Prompt:     "a paved road",
		Style:      "flat",
		Resolution: ai.DefaultResolution,
		Count:      2,
		Provider:   ai.ProviderGemini,
	}).Return([]string{"https://img/1.png", "https://img/2.png"}, nil)

	graphics, err := s.service.GenerateGraphic(s.ctx, GenerateGraphicRequest{
		Title:     "Road",
		Prompt:    "a paved road",
		Style:     "flat",
		ContentID: contentID,
		Count:     2,
		Provider:  ai.ProviderGemini,
	})
	s.Require().NoError(err)
	s.Require().Len(graphics, 2)
	s.Equal("Road (1)", graphics[0].Title)
	s.Equal("https://img/2.png", graphics[1].ImageURL)
	s.Equal(contentID, graphics[1].ContentID)
	s.Equal(ai.DefaultResolution, graphics[0].Format)
	s.Len(s.store.GraphicItems(), 2)
}

func (s *ContentGeneratorTestSuite) TestGenerateGraphic_GeneratorFailure() {
	s.generator.EXPECT().GenerateImages(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded"))

	_, err := s.service.GenerateGraphic(s.ctx, GenerateGraphicRequest{Title: "x", Prompt: "x"})
	s.Require().Error(err)
	s.Empty(s.store.GraphicItems())
}
