package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"page-quiz/internal/domain"
	"page-quiz/internal/dto"
	"page-quiz/internal/logger"
	"page-quiz/internal/metrics"
	"page-quiz/internal/util"
	"page-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	EvaluateQuiz(ctx context.Context, req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.GenerateQuizResponse, error)
	ListResults(ctx context.Context, quizID string) (*dto.QuizResultsResponse, error)
}

// Option customizes a quizService.
type Option func(*quizService)

// WithIDGenerator replaces the ULID generator used for quiz IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *quizService) { s.newID = fn }
}

// WithClock replaces the time source used for CreatedAt and CompletedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *quizService) { s.now = fn }
}

// quizService implements QuizService
type quizService struct {
	fetcher   domain.PageFetcher
	generator domain.QuizGenerator
	repo      domain.QuizRepository
	validator *validation.Validator
	newID     func() string
	now       func() time.Time
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	fetcher domain.PageFetcher,
	generator domain.QuizGenerator,
	repo domain.QuizRepository,
	opts ...Option,
) QuizService {
	s := &quizService{
		fetcher:   fetcher,
		generator: generator,
		repo:      repo,
		validator: validation.NewValidator(),
		newID:     util.NewULID,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	start := time.Now()
	difficulty, language := "unknown", "unknown"

	quiz, err := s.generateQuiz(ctx, req, &difficulty, &language)

	status := "success"
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status = string(domainErr.Code)
	}
	metrics.RecordQuizGeneration(difficulty, language, status, time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	return dto.ToGenerateQuizResponse(quiz), nil
}

func (s *quizService) generateQuiz(ctx context.Context, req *dto.GenerateQuizRequest, difficultyLabel, languageLabel *string) (*domain.GeneratedQuiz, error) {
	l := logger.Get()

	if req == nil {
		return nil, domain.NewInvalidRequestError("request body is required")
	}
	if err := s.validator.ValidateURL(req.URL); err != nil {
		return nil, domain.NewInvalidURLError(validationMessage(err))
	}
	difficulty, err := s.validator.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, domain.NewInvalidRequestError(validationMessage(err))
	}
	language, err := s.validator.ParseLanguage(req.Language)
	if err != nil {
		return nil, domain.NewInvalidRequestError(validationMessage(err))
	}
	*difficultyLabel, *languageLabel = string(difficulty), string(language)
	questionCount := domain.ClampQuestionCount(req.QuestionCount)

	content, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, toDomainError(err)
	}

	questions, err := s.generator.Generate(ctx, domain.QuizGenerationParams{
		Title:         content.Title,
		URL:           req.URL,
		Content:       content.Content,
		QuestionCount: questionCount,
		Difficulty:    difficulty,
		Language:      language,
	})
	if err != nil {
		return nil, toDomainError(err)
	}

	quiz := &domain.GeneratedQuiz{
		QuizID:      s.newID(),
		URL:         req.URL,
		Title:       content.Title,
		Description: content.Description,
		Difficulty:  difficulty,
		Language:    language,
		CreatedAt:   s.now().UTC(),
		Questions:   questions,
	}
	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		l.Error("Failed to save generated quiz", zap.String("quizID", quiz.QuizID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	l.Info("Generated quiz",
		zap.String("quizID", quiz.QuizID),
		zap.String("url", quiz.URL),
		zap.Int("questions", len(quiz.Questions)),
		zap.String("difficulty", string(difficulty)),
		zap.String("language", string(language)))
	return quiz, nil
}

// EvaluateQuiz implements QuizService
func (s *quizService) EvaluateQuiz(ctx context.Context, req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidRequestError("request body is required")
	}
	if err := s.validator.ValidateQuizID(req.QuizID); err != nil {
		return nil, domain.NewInvalidQuizIDError(validationMessage(err))
	}
	answers, err := s.validator.ParseAnswers(req.Answers)
	if err != nil {
		return nil, domain.NewInvalidAnswersError(validationMessage(err))
	}

	quiz, err := s.loadQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(quiz.Questions) {
		return nil, domain.NewInvalidAnswersError(
			fmt.Sprintf("expected %d answers, got %d", len(quiz.Questions), len(answers)))
	}

	results, correct := ScoreAnswers(quiz, answers)
	score := CalculateScore(correct, len(quiz.Questions))
	result := &domain.QuizResult{
		QuizID:             quiz.QuizID,
		Answers:            answers,
		Score:              score,
		CorrectCount:       correct,
		TotalCount:         len(quiz.Questions),
		Results:            results,
		ComprehensionLevel: DetermineComprehensionLevel(score),
		CompletedAt:        s.now().UTC(),
	}
	if err := s.repo.AppendResult(ctx, result); err != nil {
		logger.Get().Error("Failed to store quiz result", zap.String("quizID", quiz.QuizID), zap.Error(err))
		return nil, domain.NewInternalError("Failed to save result", err)
	}
	metrics.RecordEvaluation(string(result.ComprehensionLevel))

	return dto.ToEvaluateQuizResponse(result), nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.GenerateQuizResponse, error) {
	if err := s.validator.ValidateQuizID(quizID); err != nil {
		return nil, domain.NewInvalidQuizIDError(validationMessage(err))
	}
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return dto.ToGenerateQuizResponse(quiz), nil
}

// ListResults implements QuizService
func (s *quizService) ListResults(ctx context.Context, quizID string) (*dto.QuizResultsResponse, error) {
	if err := s.validator.ValidateQuizID(quizID); err != nil {
		return nil, domain.NewInvalidQuizIDError(validationMessage(err))
	}
	// Results only exist for stored quizzes; an unknown ID is a 404, not an empty list.
	if _, err := s.loadQuiz(ctx, quizID); err != nil {
		return nil, err
	}
	results, err := s.repo.ListResults(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list results", err)
	}

	resp := &dto.QuizResultsResponse{
		QuizID:  quizID,
		Results: make([]dto.EvaluateQuizResponse, 0, len(results)),
	}
	for i := range results {
		resp.Results = append(resp.Results, *dto.ToEvaluateQuizResponse(&results[i]))
	}
	return resp, nil
}

func (s *quizService) loadQuiz(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	quiz, err := s.repo.GetQuiz(ctx, quizID)
	if errors.Is(err, domain.ErrQuizNotFound) {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	return quiz, nil
}

// toDomainError maps a pipeline stage failure onto its API error code.
func toDomainError(err error) error {
	var fetchErr *domain.FetchError
	var genErr *domain.GenerationError
	switch {
	case errors.As(err, &fetchErr):
		return domain.NewFetchFailedError(fetchErr)
	case errors.As(err, &genErr):
		return domain.NewGenerationFailedError(genErr)
	default:
		logger.Get().Error("Unexpected error in quiz pipeline", zap.Error(err))
		return domain.NewInternalError("Internal server error", err)
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
