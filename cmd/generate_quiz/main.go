// Command generate_quiz builds one quiz from a URL and prints it as JSON. The quiz
// is saved to the configured store, so it can be answered through the API later.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"page-quiz/internal/adapter/llm"
	"page-quiz/internal/adapter/quizgen"
	"page-quiz/internal/adapter/scraper"
	"page-quiz/internal/config"
	"page-quiz/internal/dto"
	"page-quiz/internal/logger"
	"page-quiz/internal/repository"
	"page-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	url := flag.String("url", "", "page to build the quiz from (required)")
	count := flag.Int("count", 0, "number of questions, 3-10 (default 5)")
	difficulty := flag.String("difficulty", "", "easy, medium or hard (default medium)")
	language := flag.String("language", "", "ja or en (default ja)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx := context.Background()

	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		l.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := quizgen.NewLLMQuizGenerator(model,
		quizgen.WithTemperature(cfg.LLM.Temperature),
		quizgen.WithTimeout(cfg.LLM.Timeout),
	)
	if err != nil {
		l.Fatal("Failed to initialize QuizGenerator", zap.Error(err))
	}

	store, closeStore, err := repository.NewQuizStore(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to open quiz store", zap.Error(err))
	}
	defer closeStore()

	fetcher := scraper.NewGoqueryFetcher(&http.Client{}, scraper.Options{
		Timeout:          cfg.Scraper.FetchTimeout,
		MaxContentLength: cfg.Scraper.MaxContentLength,
		MaxBodyBytes:     cfg.Scraper.MaxBodyBytes,
		UserAgent:        cfg.Scraper.UserAgent,
	})
	quizService := service.NewQuizService(fetcher, generator, store)

	resp, err := quizService.GenerateQuiz(ctx, &dto.GenerateQuizRequest{
		URL:           *url,
		QuestionCount: *count,
		Difficulty:    *difficulty,
		Language:      *language,
	})
	if err != nil {
		l.Error("Quiz generation failed", zap.Error(err))
		closeStore()
		logger.Sync()
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		l.Fatal("Failed to write quiz", zap.Error(err))
	}
}
