package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, filePath, ext string) string {
	args := m.Called(ctx, filePath, ext)
	return args.String(0)
}
