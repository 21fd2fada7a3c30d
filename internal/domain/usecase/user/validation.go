package user

import (
	"fmt"
	"strings"

	errs "wallet/internal/domain/error"
)

// Username and password length limits
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	MaxPasswordLength = 100
)

// ValidateUsername checks the username format and returns the trimmed value.
// Usernames are 3-50 characters of letters, digits, underscores and hyphens.
func ValidateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)

	if len(username) < MinUsernameLength {
		return "", fmt.Errorf("%w: must be at least %d characters", errs.ErrInvalidUsername, MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return "", fmt.Errorf("%w: must be at most %d characters", errs.ErrInvalidUsername, MaxUsernameLength)
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return "", fmt.Errorf("%w: only letters, numbers, underscores and hyphens allowed", errs.ErrInvalidUsername)
		}
	}

	return username, nil
}

// ValidatePassword checks the password length requirements
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", errs.ErrInvalidPassword, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: must be at most %d characters", errs.ErrInvalidPassword, MaxPasswordLength)
	}
	return nil
}
