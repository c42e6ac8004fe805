package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"aiva/internal/ai"
	"aiva/internal/domain"
)

// GenerateContentRequest asks for AI-written content aimed at an ICP.
type GenerateContentRequest struct {
	ICPID       string
	Type        domain.ContentType
	Topic       string
	Title       string
	Provider    string
	APIKey      string
	Model       string
	Temperature *float32
}

// GenerateGraphicRequest asks for AI images, optionally tied to a content item.
type GenerateGraphicRequest struct {
	Title      string
	Prompt     string
	Style      string
	Resolution string
	ContentID  string
	Count      int
	Provider   string
	APIKey     string
	Model      string
}

// ContentGenerator turns generation results into stored content and graphics.
type ContentGenerator struct {
	store     DataStore
	generator Generator
	logger    *slog.Logger
}

func NewContentGenerator(store DataStore, generator Generator, logger *slog.Logger) *ContentGenerator {
	return &ContentGenerator{
		store:     store,
		generator: generator,
		logger:    logger.With("component", "content_generator"),
	}
}

// GenerateContent writes content for the ICP and stores it as an
// AI-generated ContentItem.
func (g *ContentGenerator) GenerateContent(ctx context.Context, req GenerateContentRequest) (domain.ContentItem, error) {
	icp, ok := g.store.GetICPByID(req.ICPID)
	if !ok {
		return domain.ContentItem{}, fmt.Errorf("icp %s: %w", req.ICPID, domain.ErrNotFound)
	}
	if req.Type == "" {
		req.Type = domain.ContentTypeSocial
	}

	text, err := g.generator.GenerateText(ctx, ai.TextRequest{
		Prompt:      contentPrompt(icp, req),
		Provider:    req.Provider,
		APIKey:      req.APIKey,
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResponse) {
			g.logger.Warn("generator returned no content", "icp_id", icp.ID)
		}
		return domain.ContentItem{}, fmt.Errorf("generate content: %w", err)
	}

	title := req.Title
	if title == "" {
		title = req.Topic
	}
	item := domain.ContentItem{
		Title:       title,
		Content:     strings.TrimSpace(text),
		Type:        req.Type,
		ICPID:       icp.ID,
		AIGenerated: true,
	}
	id, err := g.store.AddContentItem(ctx, item)
	if err != nil {
		return domain.ContentItem{}, err
	}

	stored, _ := g.store.GetContentItemByID(id)
	g.logger.Info("content generated", "id", id, "icp_id", icp.ID, "type", req.Type)
	return stored, nil
}

// GenerateGraphic creates images and stores one GraphicItem per image.
// Items stored before a failure stay stored.
func (g *ContentGenerator) GenerateGraphic(ctx context.Context, req GenerateGraphicRequest) ([]domain.GraphicItem, error) {
	if req.ContentID != "" {
		if _, ok := g.store.GetContentItemByID(req.ContentID); !ok {
			return nil, fmt.Errorf("content %s: %w", req.ContentID, domain.ErrNotFound)
		}
	}
	resolution := req.Resolution
	if resolution == "" {
		resolution = ai.DefaultResolution
	}

	urls, err := g.generator.GenerateImages(ctx, ai.ImageRequest{
		Prompt:     req.Prompt,
		Style:      req.Style,
		Resolution: resolution,
		Count:      req.Count,
		Provider:   req.Provider,
		APIKey:     req.APIKey,
		Model:      req.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("generate graphic: %w", err)
	}

	graphics := make([]domain.GraphicItem, 0, len(urls))
	for i, url := range urls {
		title := req.Title
		if len(urls) > 1 {
			title = fmt.Sprintf("%s (%d)", req.Title, i+1)
		}
		id, err := g.store.AddGraphicItem(ctx, domain.GraphicItem{
			Title:     title,
			ImageURL:  url,
			ContentID: req.ContentID,
			Format:    resolution,
		})
		if err != nil {
			return graphics, err
		}
		stored, _ := g.store.GetGraphicItemByID(id)
		graphics = append(graphics, stored)
	}

	g.logger.Info("graphics generated", "count", len(graphics), "content_id", req.ContentID)
	return graphics, nil
}

func contentPrompt(icp domain.ICP, req GenerateContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %s marketing content about %q.\n", contentKind(req.Type), req.Topic)
	fmt.Fprintf(&b, "Audience: %s in %s", icp.Name, icp.Industry)
	if icp.Location != "" {
		fmt.Fprintf(&b, ", based in %s", icp.Location)
	}
	if icp.BusinessSize != "" {
		fmt.Fprintf(&b, ", company size %s", icp.BusinessSize)
	}
	b.WriteString(".\n")
	if len(icp.Persona) > 0 {
		fmt.Fprintf(&b, "Personas: %s.\n", strings.Join(icp.Persona, ", "))
	}
	if len(icp.Designations) > 0 {
		fmt.Fprintf(&b, "Job titles: %s.\n", strings.Join(icp.Designations, ", "))
	}
	if len(icp.TechStack) > 0 {
		fmt.Fprintf(&b, "They use: %s.\n", strings.Join(icp.TechStack, ", "))
	}
	if icp.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s.\n", icp.Tone)
	}
	b.WriteString("Return only the content, without preamble.")
	return b.String()
}

func contentKind(t domain.ContentType) string {
	switch t {
	case domain.ContentTypeEmail:
		return "an email"
	case domain.ContentTypeBlog:
		return "a blog post"
	case domain.ContentTypeLanding:
		return "a landing page"
	case domain.ContentTypeProposal:
		return "a proposal"
	default:
		return "a social media post"
	}
}
