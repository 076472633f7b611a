package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"page-quiz/internal/domain"
	"page-quiz/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		title   string
		message string
	}{
		{"invalid url", domain.NewInvalidURLError("URL is required"), 400, "INVALID_URL", "Validation Error", "URL is required"},
		{"invalid request", domain.NewInvalidRequestError("bad"), 400, "INVALID_REQUEST", "Validation Error", "bad"},
		{"invalid quiz id", domain.NewInvalidQuizIDError("quiz ID is required"), 400, "INVALID_QUIZ_ID", "Validation Error", "quiz ID is required"},
		{"invalid answers", domain.NewInvalidAnswersError("answers must be an array"), 400, "INVALID_ANSWERS", "Validation Error", "answers must be an array"},
		{"not found", domain.NewQuizNotFoundError("abc"), 404, "QUIZ_NOT_FOUND", "Not Found", "Quiz not found with ID: abc"},
		{
			"fetch failed",
			domain.NewFetchFailedError(&domain.FetchError{StatusCode: 503}),
			500, "FETCH_FAILED", "Internal Server Error", "failed to fetch content: HTTP status 503",
		},
		{
			"generation failed",
			domain.NewGenerationFailedError(domain.NewGenerationError("invalid response format", nil)),
			500, "GENERATION_FAILED", "Internal Server Error", "failed to generate quiz: invalid response format",
		},
		{
			"internal error hides cause",
			domain.NewInternalError("Failed to save quiz", errors.New("ORA-12541: no listener")),
			500, "INTERNAL_ERROR", "Internal Server Error", "Internal server error",
		},
		{"plain error", errors.New("secret detail"), 500, "INTERNAL_ERROR", "Internal Server Error", "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newErrorApp(tt.err).Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.title, body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestErrorHandler_FiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, resp).Code)
}

func TestValidationMiddleware_ValidateQuizID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	vm := NewValidationMiddleware()
	app.Get("/quiz/:id", vm.ValidateQuizID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(QuizIDLocal).(string))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz/01HGZ8VNRYXS8QKNJV5GRWPWDQ", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "01HGZ8VNRYXS8QKNJV5GRWPWDQ", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/quiz/not-an-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUIZ_ID", decodeError(t, resp).Code)
}

func TestRequestLoggerAndMetrics_RenderErrorsOnce(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(Metrics())
	app.Use(RequestLogger())
	app.Get("/fail", func(c *fiber.Ctx) error { return domain.NewQuizNotFoundError("x") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "QUIZ_NOT_FOUND", decodeError(t, resp).Code)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
