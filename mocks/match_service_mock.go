package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobmatcher/career-analyzer/internal/models"
	"jobmatcher/career-analyzer/internal/services"
)

type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Match(ctx context.Context, input services.MatchInput) (*models.MatchResponse, error) {
	args := m.Called(ctx, input)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.MatchResponse), args.Error(1)
}
