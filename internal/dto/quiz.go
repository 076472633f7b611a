package dto

import (
	"encoding/json"
	"time"

	"page-quiz/internal/domain"
)

// GenerateQuizRequest is the body of POST /quiz/generate
// @Description Request body for generating a quiz from a web page
type GenerateQuizRequest struct {
	URL           string `json:"url" example:"https://go.dev/doc/effective_go"`
	QuestionCount int    `json:"questionCount,omitempty" example:"5"`
	Difficulty    string `json:"difficulty,omitempty" example:"medium" enums:"easy,medium,hard"`
	Language      string `json:"language,omitempty" example:"en" enums:"ja,en"`
}

// QuestionResponse is a generated question as returned to clients
type QuestionResponse struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuizResponse is the body returned by a successful generation
// @Description Generated quiz
type GenerateQuizResponse struct {
	QuizID      string             `json:"quizId"`
	URL         string             `json:"url"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Difficulty  string             `json:"difficulty"`
	Language    string             `json:"language"`
	CreatedAt   string             `json:"createdAt"`
	Questions   []QuestionResponse `json:"questions"`
}

// EvaluateQuizRequest is the body of POST /quiz/evaluate. Answers is kept raw so
// that a non-array value can be reported as INVALID_ANSWERS rather than a parse error.
// @Description Request body for scoring a quiz
type EvaluateQuizRequest struct {
	QuizID  string          `json:"quizId" example:"01HGZ8VNRYXS8QKNJV5GRWPWDQ"`
	Answers json.RawMessage `json:"answers" swaggertype:"array,integer"`
}

// QuestionResultResponse is the outcome of one answered question
type QuestionResultResponse struct {
	QuestionID    string `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
}

// EvaluateQuizResponse is a scored answer sheet
// @Description Quiz evaluation result
type EvaluateQuizResponse struct {
	QuizID             string                   `json:"quizId"`
	Answers            []int                    `json:"answers"`
	Score              int                      `json:"score"`
	CorrectCount       int                      `json:"correctCount"`
	TotalCount         int                      `json:"totalCount"`
	Results            []QuestionResultResponse `json:"results"`
	ComprehensionLevel string                   `json:"comprehensionLevel"`
	CompletedAt        string                   `json:"completedAt"`
}

// QuizResultsResponse lists every stored evaluation of a quiz, oldest first
type QuizResultsResponse struct {
	QuizID  string                 `json:"quizId"`
	Results []EvaluateQuizResponse `json:"results"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// timestampLayout renders ISO-8601 timestamps with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ToGenerateQuizResponse converts a stored quiz into its wire shape
func ToGenerateQuizResponse(q *domain.GeneratedQuiz) *GenerateQuizResponse {
	questions := make([]QuestionResponse, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = QuestionResponse{
			ID:            question.ID,
			Question:      question.Question,
			Options:       question.Options,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		}
	}
	return &GenerateQuizResponse{
		QuizID:      q.QuizID,
		URL:         q.URL,
		Title:       q.Title,
		Description: q.Description,
		Difficulty:  string(q.Difficulty),
		Language:    string(q.Language),
		CreatedAt:   FormatTimestamp(q.CreatedAt),
		Questions:   questions,
	}
}

// ToEvaluateQuizResponse converts a stored result into its wire shape
func ToEvaluateQuizResponse(r *domain.QuizResult) *EvaluateQuizResponse {
	results := make([]QuestionResultResponse, len(r.Results))
	for i, res := range r.Results {
		results[i] = QuestionResultResponse{
			QuestionID:    res.QuestionID,
			IsCorrect:     res.IsCorrect,
			UserAnswer:    res.UserAnswer,
			CorrectAnswer: res.CorrectAnswer,
		}
	}
	return &EvaluateQuizResponse{
		QuizID:             r.QuizID,
		Answers:            r.Answers,
		Score:              r.Score,
		CorrectCount:       r.CorrectCount,
		TotalCount:         r.TotalCount,
		Results:            results,
		ComprehensionLevel: string(r.ComprehensionLevel),
		CompletedAt:        FormatTimestamp(r.CompletedAt),
	}
}
