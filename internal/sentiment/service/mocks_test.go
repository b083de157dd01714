package service

import (
	"context"

	"golang-stock-sentiment/internal/sentiment/dto"
	"golang-stock-sentiment/internal/sentiment/repository"

	"github.com/stretchr/testify/mock"
)

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) Search(ctx context.Context, query string) ([]dto.OrganicResult, error) {
	args := m.Called(ctx, query)
	results, _ := args.Get(0).([]dto.OrganicResult)
	return results, args.Error(1)
}

type mockAIRepository struct {
	mock.Mock
}

func (m *mockAIRepository) Complete(ctx context.Context, req repository.ChatRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAIRepository) Model() string {
	return "test-model"
}
