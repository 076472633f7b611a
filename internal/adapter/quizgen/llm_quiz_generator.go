package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"page-quiz/internal/domain"
	"page-quiz/internal/logger"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

// LLMQuizGenerator implements domain.QuizGenerator on top of any langchaingo model.
type LLMQuizGenerator struct {
	model       llms.Model
	temperature float64
	timeout     time.Duration
	newID       func() string
}

// Option customises an LLMQuizGenerator.
type Option func(*LLMQuizGenerator)

func WithTemperature(t float64) Option {
	return func(g *LLMQuizGenerator) { g.temperature = t }
}

// WithTimeout bounds each model call; zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *LLMQuizGenerator) { g.timeout = d }
}

// WithIDGenerator replaces the question ID source.
func WithIDGenerator(fn func() string) Option {
	return func(g *LLMQuizGenerator) { g.newID = fn }
}

// NewLLMQuizGenerator creates a generator around an already constructed model.
func NewLLMQuizGenerator(model llms.Model, opts ...Option) (*LLMQuizGenerator, error) {
	if model == nil {
		return nil, errors.New("quiz generator requires a language model")
	}
	g := &LLMQuizGenerator{
		model:       model,
		temperature: 0.7,
		timeout:     DefaultTimeout,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate implements domain.QuizGenerator
func (g *LLMQuizGenerator) Generate(ctx context.Context, params domain.QuizGenerationParams) ([]domain.Question, error) {
	l := logger.Get()
	prompt := BuildPrompt(params)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.Duration("timeout", g.timeout))
			return nil, domain.NewGenerationError(fmt.Sprintf("model call timed out after %s", g.timeout), err)
		}
		l.Error("LLM call failed", zap.Error(err))
		return nil, domain.NewGenerationError("model call failed", err)
	}
	l.Debug("Raw LLM response received",
		zap.String("raw_response", raw),
		zap.Duration("duration", time.Since(start)))

	questions, err := g.parse(raw)
	if err != nil {
		l.Error("Failed to parse LLM quiz response", zap.Error(err))
		return nil, err
	}

	if params.QuestionCount > 0 && len(questions) != params.QuestionCount {
		l.Warn("LLM returned an unexpected number of questions",
			zap.Int("requested", params.QuestionCount),
			zap.Int("returned", len(questions)))
		return nil, domain.NewGenerationError(
			fmt.Sprintf("expected %d questions, got %d", params.QuestionCount, len(questions)), nil)
	}

	l.Info("Generated quiz questions", zap.String("url", params.URL), zap.Int("count", len(questions)))
	return questions, nil
}

// parse extracts, decodes, maps and validates the questions in a raw model response.
// A single invalid question fails the whole response.
func (g *LLMQuizGenerator) parse(raw string) ([]domain.Question, error) {
	payload, ok := ExtractJSONObject(raw)
	if !ok {
		return nil, domain.NewGenerationError("invalid response format", nil)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, domain.NewGenerationError("failed to parse response JSON", err)
	}
	rawQuestions, ok := envelope["questions"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(rawQuestions), []byte("[")) {
		return nil, domain.NewGenerationError("invalid questions format", nil)
	}

	var entries []rawQuestion
	if err := json.Unmarshal(rawQuestions, &entries); err != nil {
		return nil, domain.NewGenerationError("invalid questions format", err)
	}

	questions := make([]domain.Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, domain.Question{
			ID:            g.newID(),
			Question:      e.Question,
			Options:       e.Options,
			CorrectAnswer: e.CorrectAnswer,
			Explanation:   e.Explanation,
		})
	}
	for i := range questions {
		if err := questions[i].Validate(i + 1); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

// ExtractJSONObject returns the greedy substring from the first '{' to the last '}'
// of a model response, after dropping any <think>...</think> block.
func ExtractJSONObject(response string) (string, bool) {
	cleaned := strings.TrimSpace(response)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
		}
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// Static assertion to ensure LLMQuizGenerator implements QuizGenerator
var _ domain.QuizGenerator = (*LLMQuizGenerator)(nil)
