package service

import (
	"math"

	"page-quiz/internal/domain"
)

// CalculateScore returns the share of correct answers as a rounded percentage.
func CalculateScore(correctCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	return int(math.Round(float64(correctCount) / float64(totalCount) * 100))
}

// DetermineComprehensionLevel bands a 0-100 score.
func DetermineComprehensionLevel(score int) domain.ComprehensionLevel {
	switch {
	case score >= 80:
		return domain.LevelAdvanced
	case score >= 60:
		return domain.LevelIntermediate
	default:
		return domain.LevelBeginner
	}
}

// ScoreAnswers compares answers against the quiz position by position. The caller
// guarantees len(answers) == len(quiz.Questions).
func ScoreAnswers(quiz *domain.GeneratedQuiz, answers []int) ([]domain.QuestionResult, int) {
	results := make([]domain.QuestionResult, len(quiz.Questions))
	correct := 0
	for i, q := range quiz.Questions {
		ok := answers[i] == q.CorrectAnswer
		if ok {
			correct++
		}
		results[i] = domain.QuestionResult{
			QuestionID:    q.ID,
			IsCorrect:     ok,
			UserAnswer:    answers[i],
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return results, correct
}
