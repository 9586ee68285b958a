package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobmatcher/career-analyzer/internal/models"
)

type MockProfileAnalyzer struct {
	mock.Mock
}

func (m *MockProfileAnalyzer) Analyze(ctx context.Context, profileText string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, profileText)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}
