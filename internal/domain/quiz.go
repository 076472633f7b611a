package domain

import (
	"fmt"
	"time"
)

const (
	// OptionsPerQuestion is the fixed number of choices every question carries.
	OptionsPerQuestion = 4

	MinQuestionCount     = 3
	MaxQuestionCount     = 10
	DefaultQuestionCount = 5
)

// Difficulty influences prompt wording only; it is not enforced on generated output.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a request does not name one.
const DefaultDifficulty = DifficultyMedium

// IsValid reports whether d is one of the known difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Language is the language the quiz is written in.
type Language string

const (
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"
)

// DefaultLanguage is used when a request does not name one.
const DefaultLanguage = LanguageJapanese

func (l Language) IsValid() bool {
	return l == LanguageJapanese || l == LanguageEnglish
}

// ScrapedContent is the extracted, normalized view of a fetched page.
type ScrapedContent struct {
	Title       string
	Description string
	Content     string
	URL         string
}

// QuizGenerationParams carries everything the generator needs to build a prompt.
type QuizGenerationParams struct {
	Title         string
	URL           string
	Content       string
	QuestionCount int
	Difficulty    Difficulty
	Language      Language
}

// ClampQuestionCount maps a requested count into [MinQuestionCount, MaxQuestionCount].
// Zero means "not requested" and yields DefaultQuestionCount.
func ClampQuestionCount(n int) int {
	if n == 0 {
		n = DefaultQuestionCount
	}
	if n < MinQuestionCount {
		return MinQuestionCount
	}
	if n > MaxQuestionCount {
		return MaxQuestionCount
	}
	return n
}

// Question is a single validated multiple-choice question.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the option count and answer range. number is the 1-based position
// used in the error message.
func (q *Question) Validate(number int) error {
	if len(q.Options) != OptionsPerQuestion {
		return NewQuestionError(number, fmt.Sprintf("Must have exactly %d options", OptionsPerQuestion))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > OptionsPerQuestion-1 {
		return NewQuestionError(number, fmt.Sprintf("correctAnswer must be between 0 and %d", OptionsPerQuestion-1))
	}
	return nil
}

// GeneratedQuiz is produced once per successful generation call and never mutated.
type GeneratedQuiz struct {
	QuizID      string     `json:"quizId"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Language    Language   `json:"language"`
	CreatedAt   time.Time  `json:"createdAt"`
	Questions   []Question `json:"questions"`
}

// ComprehensionLevel is the band derived from a score.
type ComprehensionLevel string

const (
	LevelBeginner     ComprehensionLevel = "beginner"
	LevelIntermediate ComprehensionLevel = "intermediate"
	LevelAdvanced     ComprehensionLevel = "advanced"
)

// QuestionResult is the outcome for one answered question.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	UserAnswer    int    `json:"userAnswer"`
	CorrectAnswer int    `json:"correctAnswer"`
}

// QuizResult is an evaluated answer sheet. Results are append-only per quiz.
type QuizResult struct {
	QuizID             string             `json:"quizId"`
	Answers            []int              `json:"answers"`
	Score              int                `json:"score"`
	CorrectCount       int                `json:"correctCount"`
	TotalCount         int                `json:"totalCount"`
	Results            []QuestionResult   `json:"results"`
	ComprehensionLevel ComprehensionLevel `json:"comprehensionLevel"`
	CompletedAt        time.Time          `json:"completedAt"`
}
