package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"jobmatcher/career-analyzer/internal/models"
	"jobmatcher/career-analyzer/internal/services"
)

const processingFailedMessage = "Failed to process profile."

type MatchHandler struct {
	matcher     services.MatchService
	maxFileSize int64
	logger      *logrus.Logger
}

func NewMatchHandler(
	matcher services.MatchService,
	maxFileSize int64,
	logger *logrus.Logger,
) *MatchHandler {
	return &MatchHandler{
		matcher:     matcher,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleMatchJobs analyzes a career profile.
// @Summary     Analyze a career profile
// @Description Merges skills, desired jobs and an optional CV (pdf, docx, jpg, jpeg, png, txt) and returns a career readiness assessment.
// @Tags        Matching
// @Accept      multipart/form-data
// @Produce     json
// @Param       skills       formData string false "Free-text skills"
// @Param       desired_jobs formData string false "Desired job titles"
// @Param       file         formData file   false "CV or résumé document"
// @Success     200 {object} models.MatchResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /match-jobs [post]
func (h *MatchHandler) HandleMatchJobs(c *fiber.Ctx) error {
	input := services.MatchInput{
		Skills:      c.FormValue("skills"),
		DesiredJobs: c.FormValue("desired_jobs"),
	}

	// A missing file is fine; any other input may still be enough.
	if file, err := c.FormFile("file"); err == nil && file != nil {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
			})
		}
		input.Upload = file
	}

	result, err := h.matcher.Match(c.UserContext(), input)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(result)
}

func (h *MatchHandler) respondError(c *fiber.Ctx, err error) error {
	var aerr *services.AnalysisError
	if !errors.As(err, &aerr) {
		h.logger.WithError(err).Error("❌ Unexpected match failure")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: processingFailedMessage,
			Details: &models.ErrorDetails{
				Kind:  string(services.KindUpstreamFailure),
				Error: err.Error(),
			},
		})
	}

	if aerr.Kind == services.KindInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: services.ErrNoValidInputMessage,
		})
	}

	details := &models.ErrorDetails{
		Kind:        string(aerr.Kind),
		Error:       aerr.Message,
		RawResponse: aerr.RawResponse,
	}
	if aerr.Kind == services.KindUpstreamUnparsable && aerr.Cause != nil {
		details.Exception = aerr.Cause.Error()
	}

	h.logger.WithFields(logrus.Fields{
		"kind":  aerr.Kind,
		"error": aerr.Message,
	}).Error("❌ Profile analysis failed")

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error:   processingFailedMessage,
		Details: details,
	})
}
