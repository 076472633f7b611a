package middleware

import (
	"errors"
	"net/http"

	"page-quiz/internal/domain"
	"page-quiz/internal/dto"
	"page-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler is the centralized fiber error handler. Every failure is written as
// {error, code, message}; the cause of an INTERNAL_ERROR is logged, never returned.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		l := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", requestID(c)),
		)

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := mapDomainErrorToHTTPStatus(domainErr)
			message := domainErr.Message
			if status >= http.StatusInternalServerError {
				l.Error("Request failed",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", status),
					zap.Error(domainErr.Err),
				)
				if domainErr.Code == domain.CodeInternal {
					message = internalErrorMessage
				}
			} else {
				l.Warn("Request rejected",
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", status),
				)
			}
			return writeError(c, status, domainErr.Code, message)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			l.Warn("Fiber error occurred",
				zap.Int("status", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			if fiberErr.Code >= http.StatusInternalServerError {
				return writeError(c, fiberErr.Code, domain.CodeInternal, internalErrorMessage)
			}
			return writeError(c, fiberErr.Code, domain.CodeInvalidRequest, fiberErr.Message)
		}

		// Handle unknown errors
		l.Error("Unknown error occurred", zap.Error(err))
		return writeError(c, http.StatusInternalServerError, domain.CodeInternal, internalErrorMessage)
	}
}

func writeError(c *fiber.Ctx, status int, code domain.ErrorCode, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   errorTitle(status),
		Code:    string(code),
		Message: message,
	})
}

// errorTitle is the short human label carried in the "error" field.
func errorTitle(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "Validation Error"
	case status >= http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return http.StatusText(status)
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeQuizNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidURL, domain.CodeInvalidRequest, domain.CodeInvalidQuizID, domain.CodeInvalidAnswers:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
