package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("owner@example.com"))
	assert.True(t, IsEmail("a.b+tag@sub.domain.io"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("missing@tld@twice.com"))
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
	}{
		{"valid password", "Secret@123", ""},
		{"too short", "Ab1!", "Password must be at least 8 characters long"},
		{"no uppercase", "secret@123", "Password must contain at least one uppercase letter"},
		{"no lowercase", "SECRET@123", "Password must contain at least one lowercase letter"},
		{"no number", "Secret@abc", "Password must contain at least one number"},
		{"no special character", "Secret1234", "Password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckPassword(tt.password))
		})
	}
}
