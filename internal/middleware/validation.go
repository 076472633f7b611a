package middleware

import (
	"page-quiz/internal/domain"
	"page-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizIDLocal is the fiber.Locals key holding a validated :id path parameter.
const QuizIDLocal = "validated_quiz_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateQuizID rejects a malformed :id path parameter before it reaches a handler.
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Params("id")
		if err := vm.validator.ValidateQuizID(quizID); err != nil {
			return domain.NewInvalidQuizIDError(err.(*domain.ValidationError).Message)
		}

		// Store validated value in context for handlers to use
		c.Locals(QuizIDLocal, quizID)
		return c.Next()
	}
}
