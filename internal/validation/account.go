// Package validation provides input validation utilities
package validation

import (
	"regexp"
	"unicode/utf8"

	"wenda/internal/models"
)

// Usernames are phone numbers: 11 digits starting with 1.
var usernameRegex = regexp.MustCompile(`^1[0-9]{10}$`)

// ValidateUsername checks that the username is a well-formed phone number.
func ValidateUsername(username string) error {
	if username == "" {
		return models.NewValidationError("username is required")
	}
	if !usernameRegex.MatchString(username) {
		return models.NewValidationError("username must be a phone number (11 digits starting with 1)")
	}
	return nil
}

// ValidateNickname checks the display-name length bounds.
func ValidateNickname(nickname string) error {
	if nickname == "" {
		return models.NewValidationError("nickname is required")
	}
	if n := utf8.RuneCountInString(nickname); n < 2 || n > 20 {
		return models.NewValidationError("nickname must be between 2 and 20 characters")
	}
	return nil
}

// ValidatePassword checks the password length bounds. Passwords are length
// checked only; the stored format is the account service's concern.
func ValidatePassword(password string) error {
	if password == "" {
		return models.NewValidationError("password is required")
	}
	if n := utf8.RuneCountInString(password); n < 6 || n > 20 {
		return models.NewValidationError("password must be between 6 and 20 characters")
	}
	return nil
}

// ValidatePasswordConfirmation checks that the confirmation matches.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return models.NewValidationError("passwords do not match")
	}
	return nil
}
