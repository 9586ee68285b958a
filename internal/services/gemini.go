package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// LLMClient is the text-in/text-out view of the remote model used by the
// profile analyzer.
type LLMClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// VisionClient sends an image together with an instruction to the model.
type VisionClient interface {
	GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type GeminiService interface {
	LLMClient
	VisionClient
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      *logrus.Logger
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, logger *logrus.Logger) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   modelName,
		temperature: 0.2,
		logger:      logger,
	}, nil
}

// GenerateText implements LLMClient. It makes exactly one call; errors from
// the client library are wrapped and returned unchanged otherwise.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		g.logger.WithError(err).Error("❌ Gemini API error")
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	return g.responseText(resp)
}

// GenerateFromImage implements VisionClient.
func (g *geminiService) GenerateFromImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		g.logger.WithError(err).Error("❌ Gemini vision API error")
		return "", fmt.Errorf("failed to generate text from image: %w", err)
	}

	return g.responseText(resp)
}

// responseText returns the reply text. An empty reply is not an error here;
// the analyzer reports it as unparsable together with the raw text.
func (g *geminiService) responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		fields := logrus.Fields{"model": g.modelName, "candidates": len(resp.Candidates)}
		if len(resp.Candidates) > 0 {
			fields["finish_reason"] = resp.Candidates[0].FinishReason
		}
		g.logger.WithFields(fields).Warn("⚠️ No text content in Gemini response")
		return "", nil
	}

	g.logger.WithFields(logrus.Fields{
		"model":      g.modelName,
		"characters": len(text),
	}).Debug("📊 Gemini response received")

	return text, nil
}
