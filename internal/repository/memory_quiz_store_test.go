package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"page-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuizID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

func sampleQuiz() *domain.GeneratedQuiz {
	return &domain.GeneratedQuiz{
		QuizID:      testQuizID,
		URL:         "https://example.com/article",
		Title:       "Example",
		Description: "An example page",
		Difficulty:  domain.DifficultyMedium,
		Language:    domain.LanguageEnglish,
		CreatedAt:   testTime,
		Questions: []domain.Question{
			{ID: "q1", Question: "First?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Explanation: "b"},
			{ID: "q2", Question: "Second?", Options: []string{"e", "f", "g", "h"}, CorrectAnswer: 3, Explanation: "h"},
		},
	}
}

func sampleResult(score int) *domain.QuizResult {
	return &domain.QuizResult{
		QuizID:       testQuizID,
		Answers:      []int{1, 0},
		Score:        score,
		CorrectCount: 1,
		TotalCount:   2,
		Results: []domain.QuestionResult{
			{QuestionID: "q1", IsCorrect: true, UserAnswer: 1, CorrectAnswer: 1},
			{QuestionID: "q2", IsCorrect: false, UserAnswer: 0, CorrectAnswer: 3},
		},
		ComprehensionLevel: domain.LevelBeginner,
		CompletedAt:        testTime,
	}
}

func TestMemoryQuizStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizStore()

	_, err := store.GetQuiz(ctx, testQuizID)
	assert.ErrorIs(t, err, domain.ErrQuizNotFound)

	require.NoError(t, store.SaveQuiz(ctx, sampleQuiz()))
	got, err := store.GetQuiz(ctx, testQuizID)
	require.NoError(t, err)
	assert.Equal(t, sampleQuiz(), got)

	assert.Error(t, store.SaveQuiz(ctx, sampleQuiz()), "quizzes are immutable once saved")
	assert.Error(t, store.SaveQuiz(ctx, nil))
}

func TestMemoryQuizStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizStore()
	quiz := sampleQuiz()
	require.NoError(t, store.SaveQuiz(ctx, quiz))

	quiz.Questions[0].Options[0] = "mutated"
	got, err := store.GetQuiz(ctx, testQuizID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Questions[0].Options[0])

	got.Title = "also mutated"
	again, err := store.GetQuiz(ctx, testQuizID)
	require.NoError(t, err)
	assert.Equal(t, "Example", again.Title)
}

func TestMemoryQuizStore_ResultsAppendInOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizStore()

	results, err := store.ListResults(ctx, testQuizID)
	require.NoError(t, err)
	assert.Empty(t, results)

	for _, score := range []int{20, 50, 100} {
		require.NoError(t, store.AppendResult(ctx, sampleResult(score)))
	}
	results, err = store.ListResults(ctx, testQuizID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 20, results[0].Score)
	assert.Equal(t, 50, results[1].Score)
	assert.Equal(t, 100, results[2].Score)
	assert.Equal(t, *sampleResult(20), results[0])
}

func TestMemoryQuizStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quiz := sampleQuiz()
			quiz.QuizID = fmt.Sprintf("quiz-%d", i)
			assert.NoError(t, store.SaveQuiz(ctx, quiz))
			result := sampleResult(i)
			result.QuizID = quiz.QuizID
			assert.NoError(t, store.AppendResult(ctx, result))
			_, err := store.ListResults(ctx, quiz.QuizID)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		results, err := store.ListResults(ctx, fmt.Sprintf("quiz-%d", i))
		require.NoError(t, err)
		assert.Len(t, results, 1)
	}
}
