// File: /utils/validators_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Abc123"))
	assert.True(t, IsValidPassword("secret!9"))

	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("alllowercase"))
	assert.False(t, IsValidPassword("123456"))
}

func TestIsValidIsotopeLabel(t *testing.T) {
	assert.True(t, IsValidIsotopeLabel("F-18"))
	assert.True(t, IsValidIsotopeLabel("custom waste mix"))
	// 50 characters must fit even when they are multibyte.
	assert.True(t, IsValidIsotopeLabel(strings.Repeat("α", 50)))

	assert.False(t, IsValidIsotopeLabel(""))
	assert.False(t, IsValidIsotopeLabel("   "))
	assert.False(t, IsValidIsotopeLabel(strings.Repeat("x", 51)))
	assert.False(t, IsValidIsotopeLabel(strings.Repeat("α", 51)))
}
