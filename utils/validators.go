// File: /utils/validators.go
package utils

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	// At least 3 of 4 character types required
	count := 0
	if hasUpper {
		count++
	}
	if hasLower {
		count++
	}
	if hasNumber {
		count++
	}
	if hasSpecial {
		count++
	}

	return count >= 3
}

// IsValidIsotopeLabel limits labels to something that fits the column and
// is not pure whitespace.
func IsValidIsotopeLabel(label string) bool {
	// Rune count, not bytes: the column holds 50 characters.
	if n := utf8.RuneCountInString(label); n == 0 || n > 50 {
		return false
	}
	for _, char := range label {
		if !unicode.IsSpace(char) {
			return true
		}
	}
	return false
}
