package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail reports whether s is a plausible email address.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// IsURL reports whether s parses as an absolute URL.
func IsURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

// CheckPassword validates password strength. It returns the first violated
// rule's message, or "" when the password is acceptable. Each character class
// is checked independently so the caller can surface the specific gap.
func CheckPassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return "Password must contain at least one uppercase letter"
	case !hasLower:
		return "Password must contain at least one lowercase letter"
	case !hasDigit:
		return "Password must contain at least one number"
	case !hasSpecial:
		return "Password must contain at least one special character"
	}
	return ""
}
