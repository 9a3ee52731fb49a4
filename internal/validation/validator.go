package validation

import (
	"fmt"
	"regexp"

	"github.com/comments-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// IsValidCommentID reports whether id is a well-formed 24-hex object identifier
func IsValidCommentID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// IsValidEmail reports whether email has a plausible address format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateComment validates the author email and text of a comment payload
func ValidateComment(email, text string) []ValidationError {
	var errors []ValidationError

	// Validate email
	if email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errors = append(errors, ValidationError{Field: "email", Message: "invalid email format", Value: email})
	}

	// Validate text
	if text == "" {
		errors = append(errors, ValidationError{Field: "text", Message: "text is required"})
	} else if len(text) > models.MaxCommentLength {
		errors = append(errors, ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text exceeds maximum length of %d bytes", models.MaxCommentLength),
		})
	}

	return errors
}
