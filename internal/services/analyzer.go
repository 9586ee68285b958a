package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"jobmatcher/career-analyzer/internal/models"
)

type ProfileAnalyzer interface {
	Analyze(ctx context.Context, profileText string) (*models.AnalysisResult, error)
}

type profileAnalyzer struct {
	llm           LLMClient
	promptBuilder *PromptBuilder
	logger        *logrus.Logger
}

func NewProfileAnalyzer(llm LLMClient, logger *logrus.Logger) ProfileAnalyzer {
	return &profileAnalyzer{
		llm:           llm,
		promptBuilder: NewPromptBuilder(),
		logger:        logger,
	}
}

// Analyze sends the profile to the model once and turns the reply into an
// AnalysisResult. Errors are always *AnalysisError: KindUpstreamFailure when
// the call itself fails, KindUpstreamUnparsable when the reply is not a
// JSON object after fence stripping.
func (a *profileAnalyzer) Analyze(ctx context.Context, profileText string) (*models.AnalysisResult, error) {
	prompt := a.promptBuilder.BuildProfileAnalysisPrompt(profileText)
	a.logger.WithField("prompt_length", len(prompt)).Info("🤖 Analyzing profile with Gemini...")

	raw, err := a.llm.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.WithError(err).Error("🔥 Gemini call failed")
		return nil, newUpstreamError(err)
	}
	a.logger.WithField("raw_response", raw).Debug("📤 Gemini raw response")

	cleaned := StripCodeFences(raw)
	parsed, err := parseReplyObject(cleaned)
	if err != nil {
		a.logger.WithError(err).Warn("🚫 JSON parsing failed")
		return nil, newUnparsableError(raw, err)
	}

	if violations := CheckAnalysisShape(parsed); len(violations) > 0 {
		a.logger.WithField("violations", violations).Warn("⚠️ Gemini reply deviates from the analysis schema")
	}

	result, rejected := CoerceAnalysisResult(parsed)
	if len(rejected) > 0 {
		a.logger.WithField("fields", rejected).Warn("⚠️ Unreadable fields replaced by defaults")
	}

	return &result, nil
}
