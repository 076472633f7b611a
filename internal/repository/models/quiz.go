package models

import (
	"database/sql"
	"time"
)

// QuizRecord is a row of page_quizzes. Questions holds the JSON-encoded question list.
type QuizRecord struct {
	QuizID      string         `db:"quiz_id"`
	URL         string         `db:"url"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Difficulty  string         `db:"difficulty"`
	Language    string         `db:"language"`
	Questions   string         `db:"questions"`
	CreatedAt   time.Time      `db:"created_at"`
}

// QuizResultRecord is a row of page_quiz_results. Answers and Results are JSON.
type QuizResultRecord struct {
	ResultID           string    `db:"result_id"`
	QuizID             string    `db:"quiz_id"`
	Answers            string    `db:"answers"`
	Score              int       `db:"score"`
	CorrectCount       int       `db:"correct_count"`
	TotalCount         int       `db:"total_count"`
	Results            string    `db:"results"`
	ComprehensionLevel string    `db:"comprehension_level"`
	CompletedAt        time.Time `db:"completed_at"`
}
