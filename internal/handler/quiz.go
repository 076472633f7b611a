package handler

import (
	"page-quiz/internal/domain"
	"page-quiz/internal/dto"
	"page-quiz/internal/logger"
	"page-quiz/internal/middleware"
	"page-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a web page
// @Description Fetches the page at url, extracts its text and asks the language model for a multiple-choice quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Page URL and quiz options"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse generate request", zap.Error(err))
		return domain.NewInvalidRequestError("Invalid request body")
	}

	resp, err := h.service.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateQuiz godoc
// @Summary Score answers to a generated quiz
// @Description Compares answers against the stored quiz, records the result and returns the score
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.EvaluateQuizRequest true "Quiz ID and selected option indices"
// @Success 200 {object} dto.EvaluateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quiz/evaluate [post]
func (h *QuizHandler) EvaluateQuiz(c *fiber.Ctx) error {
	var req dto.EvaluateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse evaluate request", zap.Error(err))
		return domain.NewInvalidRequestError("Invalid request body")
	}

	resp, err := h.service.EvaluateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a generated quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuiz(c.UserContext(), quizIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListResults godoc
// @Summary List evaluation results of a quiz
// @Description Results are returned oldest first
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResultsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quiz/{id}/results [get]
func (h *QuizHandler) ListResults(c *fiber.Ctx) error {
	resp, err := h.service.ListResults(c.UserContext(), quizIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func quizIDParam(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.QuizIDLocal).(string); ok {
		return id
	}
	return c.Params("id")
}
