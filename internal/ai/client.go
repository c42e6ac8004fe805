// Package ai generates marketing copy and images through hosted models.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultTextModel  = "gpt-4o-mini"
	DefaultGemini     = "gemini-2.5-flash"
	DefaultImageModel = "dall-e-3"
	DefaultImagen     = "imagen-3.0-generate-002"
	DefaultResolution = "1024x1024"
)

// Config holds generation defaults. Per-request values override them.
type Config struct {
	Provider   string
	APIKey     string
	BaseURL    string
	Model      string
	ImageModel string
	Timeout    time.Duration

	// GeminiBaseURL overrides the Gemini API endpoint.
	GeminiBaseURL string
}

// TextRequest asks for generated text.
type TextRequest struct {
	Prompt      string
	Provider    string
	APIKey      string
	Model       string
	Temperature *float32
}

// ImageRequest asks for generated images.
type ImageRequest struct {
	Prompt     string
	Style      string
	Resolution string
	Count      int
	Provider   string
	APIKey     string
	Model      string
}

// Client dispatches generation requests to the configured provider.
type Client struct {
	httpClient *http.Client
	cfg        Config
	gemini     *geminiGenerator
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		gemini:     &geminiGenerator{baseURL: cfg.GeminiBaseURL},
		logger:     logger.With("component", "ai"),
	}
}

// GenerateText returns generated text, or domain.ErrEmptyResponse when the
// provider answered with nothing.
func (c *Client) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	provider := firstNonEmpty(req.Provider, c.cfg.Provider)
	apiKey := firstNonEmpty(req.APIKey, c.cfg.APIKey)
	if apiKey == "" {
		return "", fmt.Errorf("generate text: %s: api key is required", provider)
	}

	start := time.Now()
	var (
		text string
		err  error
	)
	switch strings.ToLower(provider) {
	case ProviderGemini:
		text, err = c.gemini.generate(ctx, apiKey, firstNonEmpty(req.Model, c.cfg.Model, DefaultGemini), req.Prompt, req.Temperature)
	default:
		text, err = c.chatCompletion(ctx, apiKey, firstNonEmpty(req.Model, c.cfg.Model, DefaultTextModel), req.Prompt, req.Temperature)
	}
	if err != nil {
		return "", fmt.Errorf("generate text: %s: %w", provider, err)
	}

	c.logger.Debug("generated text", "provider", provider, "chars", len(text), "duration", time.Since(start))
	return text, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) chatCompletion(ctx context.Context, apiKey, model, prompt string, temperature *float32) (string, error) {
	req := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}

	var resp chatResponse
	if err := c.post(ctx, apiKey, "/chat/completions", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errEmpty
	}
	return resp.Choices[0].Message.Content, nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
	Style  string `json:"style,omitempty"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImages returns the URLs of generated images, or
// domain.ErrEmptyResponse when the provider produced none. Gemini images
// come back inline as data URLs.
func (c *Client) GenerateImages(ctx context.Context, req ImageRequest) ([]string, error) {
	provider := firstNonEmpty(req.Provider, c.cfg.Provider)
	apiKey := firstNonEmpty(req.APIKey, c.cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("generate images: %s: api key is required", provider)
	}
	count := req.Count
	if count < 1 {
		count = 1
	}
	resolution := firstNonEmpty(req.Resolution, DefaultResolution)

	var (
		urls []string
		err  error
	)
	switch strings.ToLower(provider) {
	case ProviderGemini:
		model := firstNonEmpty(req.Model, c.cfg.ImageModel, DefaultImagen)
		urls, err = c.gemini.images(ctx, apiKey, model, imagePrompt(req.Prompt, req.Style), count, aspectRatio(resolution))
	default:
		model := firstNonEmpty(req.Model, c.cfg.ImageModel, DefaultImageModel)
		urls, err = c.imageGenerations(ctx, apiKey, model, req.Prompt, req.Style, count, resolution)
	}
	if err != nil {
		return nil, fmt.Errorf("generate images: %s: %w", provider, err)
	}
	return urls, nil
}

func (c *Client) imageGenerations(ctx context.Context, apiKey, model, prompt, style string, count int, size string) ([]string, error) {
	body := imageRequest{
		Model:  model,
		Prompt: prompt,
		N:      count,
		Size:   size,
		Style:  style,
	}

	var resp imageResponse
	if err := c.post(ctx, apiKey, "/images/generations", body, &resp); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	if len(urls) == 0 {
		return nil, errEmpty
	}
	return urls, nil
}

func imagePrompt(prompt, style string) string {
	if style == "" {
		return prompt
	}
	return prompt + "\nStyle: " + style
}

// aspectRatio maps a WxH resolution onto the closest ratio Imagen accepts.
func aspectRatio(resolution string) string {
	var w, h int
	if _, err := fmt.Sscanf(resolution, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return "1:1"
	}
	switch r := float64(w) / float64(h); {
	case r >= 1.5:
		return "16:9"
	case r > 1.1:
		return "4:3"
	case r <= 1/1.5:
		return "9:16"
	case r < 1/1.1:
		return "3:4"
	default:
		return "1:1"
	}
}

func (c *Client) post(ctx context.Context, apiKey, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
