package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,17}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks if the email has a valid format
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidatePhone checks the phone number format and returns a normalized
// form with spaces and dashes removed.
func ValidatePhone(phone string) (bool, string) {
	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return false, "Invalid phone number format"
	}
	normalized := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return true, normalized
}
