package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobmatcher/career-analyzer/internal/models"
	"jobmatcher/career-analyzer/internal/services"
	"jobmatcher/career-analyzer/mocks"
)

const testMaxFileSize = 1024

func newMatchApp(matcher services.MatchService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	app.Post("/match-jobs", NewMatchHandler(matcher, testMaxFileSize, logger).HandleMatchJobs)
	return app
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		part.Write(content)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/match-jobs", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleMatchJobs_Success(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	analysis := models.DefaultAnalysisResult()
	analysis.CurrentSkills = []string{"Python", "SQL"}
	analysis.PercentageMatch = 50

	mockMatcher.On("Match", mock.Anything, mock.MatchedBy(func(in services.MatchInput) bool {
		return in.Skills == "Python, SQL" && in.DesiredJobs == "Data Engineer" && in.Upload == nil
	})).Return(&models.MatchResponse{AnalysisResult: analysis, UsedCV: false}, nil)

	app := newMatchApp(mockMatcher)
	req := multipartRequest(t, map[string]string{"skills": "Python, SQL", "desired_jobs": "Data Engineer"}, "", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body, len(models.AnalysisFields)+1)
	assert.Equal(t, false, body["used_cv"])
	assert.Equal(t, []any{"Python", "SQL"}, body["current_skills"])
	assert.Equal(t, 50.0, body["percentage_match"])
	mockMatcher.AssertExpectations(t)
}

func TestHandleMatchJobs_PassesUpload(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	mockMatcher.On("Match", mock.Anything, mock.MatchedBy(func(in services.MatchInput) bool {
		return in.Upload != nil && in.Upload.Filename == "cv.pdf"
	})).Return(&models.MatchResponse{AnalysisResult: models.DefaultAnalysisResult(), UsedCV: true}, nil)

	app := newMatchApp(mockMatcher)
	resp, err := app.Test(multipartRequest(t, nil, "cv.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["used_cv"])
	mockMatcher.AssertExpectations(t)
}

func TestHandleMatchJobs_FileTooLarge(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	app := newMatchApp(mockMatcher)

	resp, err := app.Test(multipartRequest(t, nil, "cv.pdf", bytes.Repeat([]byte("a"), testMaxFileSize+1)))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "File too large")
	mockMatcher.AssertNotCalled(t, "Match", mock.Anything, mock.Anything)
}

func TestHandleMatchJobs_InvalidInput(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	mockMatcher.On("Match", mock.Anything, mock.Anything).
		Return(nil, &services.AnalysisError{Kind: services.KindInvalidInput, Message: services.ErrNoValidInputMessage})

	app := newMatchApp(mockMatcher)
	resp, err := app.Test(multipartRequest(t, map[string]string{"skills": ""}, "", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "No valid input provided."}, decodeBody(t, resp))
}

func TestHandleMatchJobs_UnparsableReply(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	mockMatcher.On("Match", mock.Anything, mock.Anything).Return(nil, &services.AnalysisError{
		Kind:        services.KindUpstreamUnparsable,
		Message:     "Gemini returned invalid JSON format.",
		RawResponse: "not json at all",
		Cause:       errors.New("invalid character 'o' in literal null (expecting 'u')"),
	})

	app := newMatchApp(mockMatcher)
	resp, err := app.Test(multipartRequest(t, map[string]string{"skills": "Go"}, "", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Failed to process profile.", body["error"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "upstream_unparsable", details["kind"])
	assert.Equal(t, "Gemini returned invalid JSON format.", details["error"])
	assert.Equal(t, "not json at all", details["raw_response"])
	assert.NotEmpty(t, details["exception"])
}

func TestHandleMatchJobs_UpstreamFailure(t *testing.T) {
	mockMatcher := new(mocks.MockMatchService)
	mockMatcher.On("Match", mock.Anything, mock.Anything).Return(nil, &services.AnalysisError{
		Kind:    services.KindUpstreamFailure,
		Message: "Gemini processing error: quota exceeded",
	})

	app := newMatchApp(mockMatcher)
	resp, err := app.Test(multipartRequest(t, map[string]string{"skills": "Go"}, "", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	details := body["details"].(map[string]any)
	assert.Equal(t, "upstream_failure", details["kind"])
	assert.Equal(t, "Gemini processing error: quota exceeded", details["error"])
	assert.NotContains(t, details, "raw_response")
	assert.NotContains(t, details, "exception")
}
