package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"jobmatcher/career-analyzer/internal/config"
	"jobmatcher/career-analyzer/internal/services"
)

type pipeline struct {
	storage services.StorageService
	matcher services.MatchService
}

func buildPipeline(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*pipeline, error) {
	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	logger.WithField("model", cfg.Gemini.Model).Info("✅ Gemini AI initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDocxParserService(),
		services.NewImageOCRService(geminiService),
		logger,
	)
	analyzer := services.NewProfileAnalyzer(geminiService, logger)
	matcher := services.NewMatchService(storageService, extractor, analyzer, logger)
	logger.Info("✅ Services initialized successfully")

	return &pipeline{
		storage: storageService,
		matcher: matcher,
	}, nil
}
