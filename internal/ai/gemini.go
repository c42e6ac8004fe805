package ai

import (
	"context"
	"encoding/base64"
	"strings"

	"google.golang.org/genai"

	"aiva/internal/domain"
)

var errEmpty = domain.ErrEmptyResponse

// geminiGenerator calls the Gemini API. A client is built per call because
// the API key may differ between requests.
type geminiGenerator struct {
	baseURL string
}

func (g *geminiGenerator) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
}

func (g *geminiGenerator) generate(ctx context.Context, apiKey, model, prompt string, temperature *float32) (string, error) {
	client, err := g.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	var config *genai.GenerateContentConfig
	if temperature != nil {
		config = &genai.GenerateContentConfig{Temperature: genai.Ptr(*temperature)}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", errEmpty
	}
	return text, nil
}

// images generates with Imagen and returns each image as a data URL.
func (g *geminiGenerator) images(ctx context.Context, apiKey, model, prompt string, count int, ratio string) ([]string, error) {
	client, err := g.client(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	result, err := client.Models.GenerateImages(ctx, model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
		AspectRatio:    ratio,
	})
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(result.GeneratedImages))
	for _, generated := range result.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		mime := generated.Image.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		urls = append(urls, "data:"+mime+";base64,"+base64.StdEncoding.EncodeToString(generated.Image.ImageBytes))
	}
	if len(urls) == 0 {
		return nil, errEmpty
	}
	return urls, nil
}
