// @title Page Quiz API
// @version 1.0
// @description Generates multiple-choice quizzes from web pages and scores answers.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "page-quiz/cmd/api/docs"
	"page-quiz/internal/adapter/llm"
	"page-quiz/internal/adapter/quizgen"
	"page-quiz/internal/adapter/scraper"
	"page-quiz/internal/config"
	"page-quiz/internal/handler"
	"page-quiz/internal/logger"
	"page-quiz/internal/middleware"
	"page-quiz/internal/repository"
	"page-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := llm.NewModel(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator, err := quizgen.NewLLMQuizGenerator(model,
		quizgen.WithTemperature(cfg.LLM.Temperature),
		quizgen.WithTimeout(cfg.LLM.Timeout),
	)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}

	fetcher := scraper.NewGoqueryFetcher(&http.Client{}, scraper.Options{
		Timeout:          cfg.Scraper.FetchTimeout,
		MaxContentLength: cfg.Scraper.MaxContentLength,
		MaxBodyBytes:     cfg.Scraper.MaxBodyBytes,
		UserAgent:        cfg.Scraper.UserAgent,
	})

	store, closeStore, err := repository.NewQuizStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open quiz store", zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			appLogger.Warn("Failed to close quiz store", zap.Error(err))
		}
	}()

	quizService := service.NewQuizService(fetcher, generator, store)
	quizHandler := handler.NewQuizHandler(quizService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New())
	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterQuizRoutes(app.Group("/api"), quizHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("llm_provider", cfg.LLM.Provider),
			zap.String("storage", cfg.Storage.Driver))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
