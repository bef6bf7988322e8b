package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiGenerator talks to Google's Gemini API in JSON response mode.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeoutSeconds int, log *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 60
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		log:     log,
	}, nil
}

// Generate sends one prompt (plus any inline images) and returns the model's
// raw JSON output. Cancellation is not supported mid-call; the deadline keeps
// a stuck upstream from blocking the request forever.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		g.log.Error("Gemini call failed",
			zap.Error(err),
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, errors.New("empty model response")
	}

	g.log.Debug("Gemini call completed",
		zap.String("model", g.model),
		zap.Int("response_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return []byte(text), nil
}
