package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"jobmatcher/career-analyzer/internal/models"
)

// MatchInput is one request to the pipeline. Upload is a multipart file
// that is stored temporarily and always deleted; DocumentPath is a local
// file that is read in place and left untouched. At most one should be set.
type MatchInput struct {
	Skills       string
	DesiredJobs  string
	Upload       *multipart.FileHeader
	DocumentPath string
}

type MatchService interface {
	Match(ctx context.Context, input MatchInput) (*models.MatchResponse, error)
}

type matchService struct {
	storage   StorageService
	extractor TextExtractor
	analyzer  ProfileAnalyzer
	logger    *logrus.Logger
}

func NewMatchService(
	storage StorageService,
	extractor TextExtractor,
	analyzer ProfileAnalyzer,
	logger *logrus.Logger,
) MatchService {
	return &matchService{
		storage:   storage,
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// Match runs extract, normalize and analyze for a single request. The
// returned error is always an *AnalysisError.
func (m *matchService) Match(ctx context.Context, input MatchInput) (*models.MatchResponse, error) {
	var documentText string
	switch {
	case input.Upload != nil:
		documentText = m.extractUpload(ctx, input.Upload)
	case input.DocumentPath != "":
		documentText = m.safeExtract(ctx, input.DocumentPath, filepath.Ext(input.DocumentPath))
	}

	profile, usedCV, err := NormalizeProfile(input.Skills, input.DesiredJobs, documentText)
	if err != nil {
		m.logger.Info("⚠️ Rejected request with no usable input")
		return nil, err
	}

	m.logger.WithFields(logrus.Fields{
		"profile_length": len(profile),
		"used_cv":        usedCV,
	}).Info("🚀 Profile ready for analysis")

	result, err := m.analyzer.Analyze(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &models.MatchResponse{
		AnalysisResult: *result,
		UsedCV:         usedCV,
	}, nil
}

// extractUpload stores the upload, extracts its text and removes the stored
// file on every path out, including a panicking extractor. The file type
// comes from the name the client sent, not the sanitized stored name.
func (m *matchService) extractUpload(ctx context.Context, upload *multipart.FileHeader) string {
	ext := filepath.Ext(upload.Filename)

	filePath, err := m.storage.SaveUpload(upload)
	if err != nil {
		m.logger.WithError(err).WithField("kind", KindExtractionFailure).Error("🛑 Failed to store uploaded file")
		return ""
	}
	defer func() {
		if err := m.storage.Delete(filePath); err != nil {
			m.logger.WithError(err).Warn("⚠️ Could not delete uploaded file")
		}
	}()

	return m.safeExtract(ctx, filePath, ext)
}

func (m *matchService) safeExtract(ctx context.Context, filePath, ext string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithFields(logrus.Fields{
				"panic": r,
				"kind":  KindExtractionFailure,
			}).Error("🛑 Text extraction panicked")
			text = ""
		}
	}()

	return m.extractor.Extract(ctx, filePath, strings.ToLower(ext))
}
