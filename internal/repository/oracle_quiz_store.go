package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"page-quiz/internal/domain"
	"page-quiz/internal/repository/models"
	"page-quiz/internal/util"
)

// OracleQuizStore implements domain.QuizRepository on the page_quizzes and
// page_quiz_results tables.
type OracleQuizStore struct {
	db DBTX
}

var _ domain.QuizRepository = (*OracleQuizStore)(nil)

// NewOracleQuizStore creates a store over db, typically a *sqlx.DB.
func NewOracleQuizStore(db DBTX) *OracleQuizStore {
	return &OracleQuizStore{db: db}
}

const (
	insertQuizQuery = `INSERT INTO page_quizzes (
		quiz_id, url, title, description, difficulty, language, questions, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8
	)`

	selectQuizQuery = `SELECT
		quiz_id "quiz_id",
		url "url",
		title "title",
		description "description",
		difficulty "difficulty",
		language "language",
		questions "questions",
		created_at "created_at"
	FROM page_quizzes
	WHERE quiz_id = :1`

	insertResultQuery = `INSERT INTO page_quiz_results (
		result_id, quiz_id, answers, score, correct_count, total_count, results, comprehension_level, completed_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	selectResultsQuery = `SELECT
		result_id "result_id",
		quiz_id "quiz_id",
		answers "answers",
		score "score",
		correct_count "correct_count",
		total_count "total_count",
		results "results",
		comprehension_level "comprehension_level",
		completed_at "completed_at"
	FROM page_quiz_results
	WHERE quiz_id = :1
	ORDER BY result_id`
)

// SaveQuiz implements domain.QuizRepository
func (s *OracleQuizStore) SaveQuiz(ctx context.Context, quiz *domain.GeneratedQuiz) error {
	rec, err := toQuizRecord(quiz)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, insertQuizQuery,
		rec.QuizID,
		rec.URL,
		rec.Title,
		rec.Description,
		rec.Difficulty,
		rec.Language,
		rec.Questions,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz %s: %w", rec.QuizID, err)
	}
	return nil
}

// GetQuiz implements domain.QuizRepository
func (s *OracleQuizStore) GetQuiz(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	var rec models.QuizRecord
	if err := s.db.GetContext(ctx, &rec, selectQuizQuery, quizID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", quizID, err)
	}
	return toDomainQuiz(&rec)
}

// AppendResult implements domain.QuizRepository. Result IDs are ULIDs so that
// ordering by ID preserves append order.
func (s *OracleQuizStore) AppendResult(ctx context.Context, result *domain.QuizResult) error {
	rec, err := toResultRecord(result)
	if err != nil {
		return err
	}
	rec.ResultID = util.NewULID()

	_, err = s.db.ExecContext(ctx, insertResultQuery,
		rec.ResultID,
		rec.QuizID,
		rec.Answers,
		rec.Score,
		rec.CorrectCount,
		rec.TotalCount,
		rec.Results,
		rec.ComprehensionLevel,
		rec.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for quiz %s: %w", rec.QuizID, err)
	}
	return nil
}

// ListResults implements domain.QuizRepository
func (s *OracleQuizStore) ListResults(ctx context.Context, quizID string) ([]domain.QuizResult, error) {
	var recs []models.QuizResultRecord
	if err := s.db.SelectContext(ctx, &recs, selectResultsQuery, quizID); err != nil {
		return nil, fmt.Errorf("failed to list results for quiz %s: %w", quizID, err)
	}

	results := make([]domain.QuizResult, 0, len(recs))
	for i := range recs {
		r, err := toDomainResult(&recs[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

func toQuizRecord(quiz *domain.GeneratedQuiz) (*models.QuizRecord, error) {
	if quiz == nil {
		return nil, fmt.Errorf("cannot save nil quiz")
	}
	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal questions: %w", err)
	}
	return &models.QuizRecord{
		QuizID:      quiz.QuizID,
		URL:         quiz.URL,
		Title:       quiz.Title,
		Description: util.StringToNullString(quiz.Description),
		Difficulty:  string(quiz.Difficulty),
		Language:    string(quiz.Language),
		Questions:   string(questions),
		CreatedAt:   quiz.CreatedAt,
	}, nil
}

func toDomainQuiz(rec *models.QuizRecord) (*domain.GeneratedQuiz, error) {
	var questions []domain.Question
	if err := json.Unmarshal([]byte(rec.Questions), &questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions for quiz %s: %w", rec.QuizID, err)
	}
	return &domain.GeneratedQuiz{
		QuizID:      rec.QuizID,
		URL:         rec.URL,
		Title:       rec.Title,
		Description: util.NullStringToString(rec.Description),
		Difficulty:  domain.Difficulty(rec.Difficulty),
		Language:    domain.Language(rec.Language),
		CreatedAt:   rec.CreatedAt.UTC(),
		Questions:   questions,
	}, nil
}

func toResultRecord(result *domain.QuizResult) (*models.QuizResultRecord, error) {
	if result == nil {
		return nil, fmt.Errorf("cannot append nil result")
	}
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	results, err := json.Marshal(result.Results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal question results: %w", err)
	}
	return &models.QuizResultRecord{
		QuizID:             result.QuizID,
		Answers:            string(answers),
		Score:              result.Score,
		CorrectCount:       result.CorrectCount,
		TotalCount:         result.TotalCount,
		Results:            string(results),
		ComprehensionLevel: string(result.ComprehensionLevel),
		CompletedAt:        result.CompletedAt,
	}, nil
}

func toDomainResult(rec *models.QuizResultRecord) (*domain.QuizResult, error) {
	r := &domain.QuizResult{
		QuizID:             rec.QuizID,
		Score:              rec.Score,
		CorrectCount:       rec.CorrectCount,
		TotalCount:         rec.TotalCount,
		ComprehensionLevel: domain.ComprehensionLevel(rec.ComprehensionLevel),
		CompletedAt:        rec.CompletedAt.UTC(),
	}
	if err := json.Unmarshal([]byte(rec.Answers), &r.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers for result %s: %w", rec.ResultID, err)
	}
	if err := json.Unmarshal([]byte(rec.Results), &r.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question results for result %s: %w", rec.ResultID, err)
	}
	return r, nil
}
