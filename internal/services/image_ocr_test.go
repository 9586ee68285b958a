package services_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobmatcher/career-analyzer/internal/services"
	"jobmatcher/career-analyzer/mocks"
)

func TestImageOCRService_ExtractText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.PNG")
	image := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}
	require.NoError(t, os.WriteFile(path, image, 0600))

	mockVision := new(mocks.MockVisionClient)
	mockVision.On("GenerateFromImage", mock.Anything, mock.AnythingOfType("string"), image, "image/png").
		Return("Jane Doe\nData Analyst", nil)

	text, err := services.NewImageOCRService(mockVision).ExtractText(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nData Analyst", text)
	mockVision.AssertExpectations(t)
}

func TestImageOCRService_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.gif")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a"), 0600))

	mockVision := new(mocks.MockVisionClient)
	_, err := services.NewImageOCRService(mockVision).ExtractText(context.Background(), path)

	assert.Error(t, err)
	mockVision.AssertNotCalled(t, "GenerateFromImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImageOCRService_VisionError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.jpeg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8}, 0600))

	mockVision := new(mocks.MockVisionClient)
	mockVision.On("GenerateFromImage", mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("", errors.New("resource exhausted"))

	_, err := services.NewImageOCRService(mockVision).ExtractText(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resource exhausted")
}
