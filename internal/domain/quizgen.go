package domain

import (
	"context"
)

// PageFetcher retrieves a page and extracts the text a quiz is built from.
type PageFetcher interface {
	// Fetch fails with *FetchError on network failure, non-2xx status or timeout.
	Fetch(ctx context.Context, url string) (*ScrapedContent, error)
}

// QuizGenerator turns page content into validated questions.
type QuizGenerator interface {
	// Generate returns exactly params.QuestionCount questions or a *GenerationError.
	Generate(ctx context.Context, params QuizGenerationParams) ([]Question, error)
}

// QuizRepository stores generated quizzes and their evaluation results.
// Quizzes are immutable once saved; results are append-only per quiz.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *GeneratedQuiz) error
	// GetQuiz returns ErrQuizNotFound when nothing is stored under quizID.
	GetQuiz(ctx context.Context, quizID string) (*GeneratedQuiz, error)
	AppendResult(ctx context.Context, result *QuizResult) error
	// ListResults returns results in the order they were appended.
	ListResults(ctx context.Context, quizID string) ([]QuizResult, error)
}
