// Package llm builds the language model the quiz generator is constructed with.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"page-quiz/internal/config"
	"page-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// NewModel creates the model named by cfg.Provider. It fails fast when the
// provider needs a credential that is not configured.
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	l := logger.Get()

	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		l.Info("Initializing Gemini model", zap.String("model", cfg.Model))
		model, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return model, nil

	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		l.Info("Initializing OpenAI model", zap.String("model", cfg.Model))
		model, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return model, nil

	case config.ProviderOllama:
		l.Info("Initializing Ollama model", zap.String("server_url", cfg.Server), zap.String("model", cfg.Model))
		httpClient := &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
			},
		}
		model, err := ollama.New(
			ollama.WithServerURL(cfg.Server),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return model, nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
