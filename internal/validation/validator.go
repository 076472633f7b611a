package validation

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"page-quiz/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL checks that raw is present and is an absolute http or https URL.
func (v *Validator) ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return domain.NewValidationError("url", "URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return domain.NewValidationError("url", "URL is not valid")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return domain.NewValidationError("url", "Please enter an HTTP or HTTPS URL")
	}
	return nil
}

// ParseDifficulty applies the default for an empty value and rejects unknown ones.
func (v *Validator) ParseDifficulty(raw string) (domain.Difficulty, error) {
	if raw == "" {
		return domain.DefaultDifficulty, nil
	}
	d := domain.Difficulty(strings.ToLower(raw))
	if !d.IsValid() {
		return "", domain.NewValidationError("difficulty", "difficulty must be one of easy, medium, hard")
	}
	return d, nil
}

// ParseLanguage applies the default for an empty value and rejects unknown ones.
func (v *Validator) ParseLanguage(raw string) (domain.Language, error) {
	if raw == "" {
		return domain.DefaultLanguage, nil
	}
	lang := domain.Language(strings.ToLower(raw))
	if !lang.IsValid() {
		return "", domain.NewValidationError("language", "language must be one of ja, en")
	}
	return lang, nil
}

// ValidateQuizID checks that a quiz identifier is present and looks like one we minted.
func (v *Validator) ValidateQuizID(quizID string) error {
	if strings.TrimSpace(quizID) == "" {
		return domain.NewValidationError("quizId", "quiz ID is required")
	}
	if !isValidULID(quizID) {
		return domain.NewValidationError("quizId", "quiz ID is not valid")
	}
	return nil
}

// ParseAnswers decodes a raw answers field, which must be a JSON array of integers.
func (v *Validator) ParseAnswers(raw json.RawMessage) ([]int, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || !strings.HasPrefix(trimmed, "[") {
		return nil, domain.NewValidationError("answers", "answers must be an array")
	}
	var answers []int
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, domain.NewValidationError("answers", "answers must be an array of integers")
	}
	return answers, nil
}

var validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	return validULID.MatchString(s)
}
