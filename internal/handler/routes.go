package handler

import (
	"page-quiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterQuizRoutes mounts the quiz endpoints on api (normally the /api group).
func RegisterQuizRoutes(api fiber.Router, h *QuizHandler) {
	vm := middleware.NewValidationMiddleware()

	quiz := api.Group("/quiz")
	quiz.Post("/generate", h.GenerateQuiz)
	quiz.Post("/evaluate", h.EvaluateQuiz)
	quiz.Get("/:id", vm.ValidateQuizID(), h.GetQuiz)
	quiz.Get("/:id/results", vm.ValidateQuizID(), h.ListResults)
}
