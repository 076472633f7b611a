package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"page-quiz/internal/cache"
	"page-quiz/internal/domain"
	"page-quiz/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisServiceName = "quiz"

// RedisQuizStore stores each quiz as a JSON string and its results as a JSON list.
// Both keys share the configured TTL; zero keeps them forever.
type RedisQuizStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.QuizRepository = (*RedisQuizStore)(nil)

// NewRedisQuizStore expects a connected *redis.Client.
func NewRedisQuizStore(client *redis.Client, ttl time.Duration) *RedisQuizStore {
	return &RedisQuizStore{client: client, ttl: ttl}
}

func quizKey(quizID string) string {
	return cache.GenerateCacheKey(redisServiceName, "record", quizID)
}

func resultsKey(quizID string) string {
	return cache.GenerateCacheKey(redisServiceName, "results", quizID)
}

func (s *RedisQuizStore) SaveQuiz(ctx context.Context, quiz *domain.GeneratedQuiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz %s: %w", quiz.QuizID, err)
	}

	created, err := s.client.SetNX(ctx, quizKey(quiz.QuizID), string(data), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to store quiz %s: %w", quiz.QuizID, err)
	}
	if !created {
		return fmt.Errorf("quiz %s already exists", quiz.QuizID)
	}
	logger.Get().Debug("Stored quiz in Redis", zap.String("quizID", quiz.QuizID), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *RedisQuizStore) GetQuiz(ctx context.Context, quizID string) (*domain.GeneratedQuiz, error) {
	val, err := s.client.Get(ctx, quizKey(quizID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz %s: %w", quizID, err)
	}

	var quiz domain.GeneratedQuiz
	if err := json.Unmarshal([]byte(val), &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz %s: %w", quizID, err)
	}
	return &quiz, nil
}

func (s *RedisQuizStore) AppendResult(ctx context.Context, result *domain.QuizResult) error {
	if result == nil {
		return fmt.Errorf("cannot append nil result")
	}
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result for quiz %s: %w", result.QuizID, err)
	}

	key := resultsKey(result.QuizID)
	if err := s.client.RPush(ctx, key, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to append result for quiz %s: %w", result.QuizID, err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			logger.Get().Warn("Failed to refresh TTL on quiz results", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

func (s *RedisQuizStore) ListResults(ctx context.Context, quizID string) ([]domain.QuizResult, error) {
	vals, err := s.client.LRange(ctx, resultsKey(quizID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to list results for quiz %s: %w", quizID, err)
	}

	results := make([]domain.QuizResult, 0, len(vals))
	for _, val := range vals {
		var r domain.QuizResult
		if err := json.Unmarshal([]byte(val), &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result for quiz %s: %w", quizID, err)
		}
		results = append(results, r)
	}
	return results, nil
}
