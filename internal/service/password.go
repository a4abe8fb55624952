package service

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// ValidatePassword applies the password policy. Checks run in a fixed order and
// the first failure is returned as a *ValidationError.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)

	switch {
	case length < minPasswordLength:
		return passwordError("Password must be longer than 8 characters")
	case length > maxPasswordLength:
		return passwordError("Password must be less than 72 characters")
	}

	first, _ := utf8.DecodeRuneInString(password)
	last, _ := utf8.DecodeLastRuneInString(password)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return passwordError("Password must not start or end with empty spaces")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return passwordError("Password must contain 1 upper case, lower case and number")
	}

	return nil
}

func passwordError(message string) error {
	return &ValidationError{Field: "password", Message: message}
}

// HashPassword returns a salted bcrypt digest of password.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		// 72 characters can still exceed bcrypt's 72 byte input limit
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", passwordError("Password must be less than 72 characters")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(digest), nil
}

func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
