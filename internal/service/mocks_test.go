package service

import (
	"context"

	"page-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockPageFetcher ---
type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) Fetch(ctx context.Context, url string) (*domain.ScrapedContent, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScrapedContent), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) Generate(ctx context.Context, params domain.QuizGenerationParams) ([]domain.Question, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.GeneratedQuiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuiz(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedQuiz), args.Error(1)
}

func (m *MockQuizRepository) AppendResult(ctx context.Context, result *domain.QuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizRepository) ListResults(ctx context.Context, quizID string) ([]domain.QuizResult, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

var (
	_ domain.PageFetcher    = (*MockPageFetcher)(nil)
	_ domain.QuizGenerator  = (*MockQuizGenerator)(nil)
	_ domain.QuizRepository = (*MockQuizRepository)(nil)
)
