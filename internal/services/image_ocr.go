package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageOCRService reads the text out of an uploaded image.
type ImageOCRService interface {
	ExtractText(ctx context.Context, filePath string) (string, error)
}

type imageOCRService struct {
	vision        VisionClient
	promptBuilder *PromptBuilder
}

func NewImageOCRService(vision VisionClient) ImageOCRService {
	return &imageOCRService{
		vision:        vision,
		promptBuilder: NewPromptBuilder(),
	}
}

func (s *imageOCRService) ExtractText(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	mimeType, ok := imageMimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type: %s", ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	text, err := s.vision.GenerateFromImage(ctx, s.promptBuilder.BuildImageTranscriptionPrompt(), data, mimeType)
	if err != nil {
		return "", fmt.Errorf("failed to transcribe image: %w", err)
	}

	return text, nil
}
