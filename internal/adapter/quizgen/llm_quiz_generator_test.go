package quizgen_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"page-quiz/internal/adapter/quizgen"
	"page-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// stubModel is a canned llms.Model that records the prompts it receives.
type stubModel struct {
	response string
	err      error
	block    bool
	prompts  []string
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				m.prompts = append(m.prompts, text.Text)
			}
		}
	}
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q-%d", n)
	}
}

func validQuestionsJSON(n int) string {
	type q struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	qs := make([]q, n)
	for i := range qs {
		qs[i] = q{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
			Explanation:   fmt.Sprintf("because %d", i+1),
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": qs})
	return string(b)
}

func params(n int) domain.QuizGenerationParams {
	return domain.QuizGenerationParams{
		Title:         "Go Concurrency",
		URL:           "https://example.com/go",
		Content:       "Goroutines and channels.",
		QuestionCount: n,
		Difficulty:    domain.DifficultyMedium,
		Language:      domain.LanguageEnglish,
	}
}

func newGenerator(t *testing.T, model llms.Model, opts ...quizgen.Option) *quizgen.LLMQuizGenerator {
	t.Helper()
	opts = append([]quizgen.Option{quizgen.WithIDGenerator(sequentialIDs())}, opts...)
	g, err := quizgen.NewLLMQuizGenerator(model, opts...)
	require.NoError(t, err)
	return g
}

func TestNewLLMQuizGenerator_NilModel(t *testing.T) {
	_, err := quizgen.NewLLMQuizGenerator(nil)
	assert.Error(t, err)
}

func TestGenerate_ExtractsJSONFromProse(t *testing.T) {
	model := &stubModel{response: `Sure! {"questions":[{"question":"Q1","options":["a","b","c","d"],"correctAnswer":1,"explanation":"e"}]} Thanks`}
	g := newGenerator(t, model)

	questions, err := g.Generate(context.Background(), params(1))
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "q-1", q.ID)
	assert.Equal(t, "Q1", q.Question)
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
	assert.Equal(t, 1, q.CorrectAnswer)
	assert.Equal(t, "e", q.Explanation)

	require.Len(t, model.prompts, 1)
	assert.Equal(t, quizgen.BuildPrompt(params(1)), model.prompts[0])
}

func TestGenerate_PreservesOrderAndAssignsUniqueIDs(t *testing.T) {
	g, err := quizgen.NewLLMQuizGenerator(&stubModel{response: validQuestionsJSON(5)})
	require.NoError(t, err)

	questions, err := g.Generate(context.Background(), params(5))
	require.NoError(t, err)
	require.Len(t, questions, 5)

	seen := map[string]bool{}
	for i, q := range questions {
		assert.Equal(t, fmt.Sprintf("Question %d?", i+1), q.Question)
		assert.Len(t, q.Options, domain.OptionsPerQuestion)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.LessOrEqual(t, q.CorrectAnswer, 3)
		assert.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestGenerate_StripsThinkBlock(t *testing.T) {
	model := &stubModel{response: "<think>maybe {\"questions\": 1}</think>\n" + validQuestionsJSON(3)}
	g := newGenerator(t, model)

	questions, err := g.Generate(context.Background(), params(3))
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		response string
		count    int
		wantMsg  string
		question int
	}{
		{
			name:     "no json object",
			response: "I cannot help with that.",
			count:    1,
			wantMsg:  "invalid response format",
		},
		{
			name:     "malformed json",
			response: `{"questions": [ {"question": "Q1", }`,
			count:    1,
			wantMsg:  "failed to parse response JSON",
		},
		{
			name:     "missing questions field",
			response: `{"items": []}`,
			count:    1,
			wantMsg:  "invalid questions format",
		},
		{
			name:     "questions is not an array",
			response: `{"questions": {"question": "Q1"}}`,
			count:    1,
			wantMsg:  "invalid questions format",
		},
		{
			name:     "first question has three options",
			response: `{"questions":[{"question":"Q1","options":["a","b","c"],"correctAnswer":0,"explanation":"e"}]}`,
			count:    1,
			wantMsg:  "Question 1: Must have exactly 4 options",
			question: 1,
		},
		{
			name: "second question answer out of range",
			response: `{"questions":[
				{"question":"Q1","options":["a","b","c","d"],"correctAnswer":0,"explanation":"e"},
				{"question":"Q2","options":["a","b","c","d"],"correctAnswer":4,"explanation":"e"}]}`,
			count:    2,
			wantMsg:  "Question 2: correctAnswer must be between 0 and 3",
			question: 2,
		},
		{
			name:     "fewer questions than requested",
			response: validQuestionsJSON(2),
			count:    5,
			wantMsg:  "expected 5 questions, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(t, &stubModel{response: tt.response})

			questions, err := g.Generate(context.Background(), params(tt.count))
			require.Error(t, err)
			assert.Nil(t, questions)

			var genErr *domain.GenerationError
			require.True(t, errors.As(err, &genErr), "error should be a GenerationError, got %T", err)
			assert.Equal(t, tt.question, genErr.Question)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestGenerate_ModelError(t *testing.T) {
	cause := errors.New("quota exceeded")
	g := newGenerator(t, &stubModel{err: cause})

	_, err := g.Generate(context.Background(), params(3))
	require.Error(t, err)

	var genErr *domain.GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerate_Timeout(t *testing.T) {
	g := newGenerator(t, &stubModel{block: true}, quizgen.WithTimeout(20*time.Millisecond))

	_, err := g.Generate(context.Background(), params(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
}

func TestExtractJSONObject(t *testing.T) {
	got, ok := quizgen.ExtractJSONObject("prefix {\"a\": {\"b\": 1}} suffix")
	assert.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, got)

	_, ok = quizgen.ExtractJSONObject("} backwards {")
	assert.False(t, ok)

	_, ok = quizgen.ExtractJSONObject("")
	assert.False(t, ok)
}

func TestBuildPrompt(t *testing.T) {
	p := params(7)
	prompt := quizgen.BuildPrompt(p)

	assert.Equal(t, prompt, quizgen.BuildPrompt(p), "prompt must be deterministic")
	assert.Contains(t, prompt, "Title: Go Concurrency")
	assert.Contains(t, prompt, "URL: https://example.com/go")
	assert.Contains(t, prompt, "Goroutines and channels.")
	assert.Contains(t, prompt, "Number of questions: 7")
	assert.Contains(t, prompt, "Difficulty: medium (intermediate questions")
	assert.Contains(t, prompt, "Language: English")
	assert.Contains(t, prompt, `"correctAnswer": 0`)
	assert.Contains(t, prompt, "JSON only")

	p.Language = domain.LanguageJapanese
	p.Difficulty = domain.DifficultyHard
	prompt = quizgen.BuildPrompt(p)
	assert.Contains(t, prompt, "Language: Japanese")
	assert.Contains(t, prompt, "Difficulty: hard (advanced questions")
	assert.True(t, strings.HasPrefix(prompt, "You are an expert in educational content."))
}
