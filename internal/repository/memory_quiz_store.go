package repository

import (
	"context"
	"fmt"
	"sync"

	"page-quiz/internal/domain"
)

// MemoryQuizStore keeps quizzes and results in process memory. Contents are lost
// on restart.
type MemoryQuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]*domain.GeneratedQuiz
	results map[string][]domain.QuizResult
}

var _ domain.QuizRepository = (*MemoryQuizStore)(nil)

func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		quizzes: make(map[string]*domain.GeneratedQuiz),
		results: make(map[string][]domain.QuizResult),
	}
}

func (s *MemoryQuizStore) SaveQuiz(_ context.Context, quiz *domain.GeneratedQuiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.quizzes[quiz.QuizID]; exists {
		return fmt.Errorf("quiz %s already exists", quiz.QuizID)
	}
	s.quizzes[quiz.QuizID] = copyQuiz(quiz)
	return nil
}

func (s *MemoryQuizStore) GetQuiz(_ context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, domain.ErrQuizNotFound
	}
	return copyQuiz(quiz), nil
}

func (s *MemoryQuizStore) AppendResult(_ context.Context, result *domain.QuizResult) error {
	if result == nil {
		return fmt.Errorf("cannot append nil result")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.QuizID] = append(s.results[result.QuizID], copyResult(*result))
	return nil
}

func (s *MemoryQuizStore) ListResults(_ context.Context, quizID string) ([]domain.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.results[quizID]
	out := make([]domain.QuizResult, len(stored))
	for i, r := range stored {
		out[i] = copyResult(r)
	}
	return out, nil
}

// copyQuiz returns a deep copy so callers can never mutate stored records.
func copyQuiz(q *domain.GeneratedQuiz) *domain.GeneratedQuiz {
	cp := *q
	cp.Questions = make([]domain.Question, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = append([]string(nil), question.Options...)
		cp.Questions[i] = question
	}
	return &cp
}

func copyResult(r domain.QuizResult) domain.QuizResult {
	r.Answers = append([]int(nil), r.Answers...)
	r.Results = append([]domain.QuestionResult(nil), r.Results...)
	return r
}
