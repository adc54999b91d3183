package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"merchant1@example.com",
		"first.last+tag@sub.domain.in",
	}
	for _, email := range valid {
		ok, msg := ValidateEmail(email)
		assert.True(t, ok, "expected %q to be valid: %s", email, msg)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@example.com",
	}
	for _, email := range invalid {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Str0ngpass")
	assert.True(t, ok)

	cases := map[string]string{
		"short1A":      "too short",
		"alllowercase1": "no uppercase",
		"ALLUPPERCASE1": "no lowercase",
		"NoNumbersHere": "no digit",
	}
	for password, reason := range cases {
		ok, msg := ValidatePassword(password)
		assert.False(t, ok, "expected %q to fail (%s)", password, reason)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePhone(t *testing.T) {
	ok, normalized := ValidatePhone("+91-98765 43210")
	assert.True(t, ok)
	assert.Equal(t, "+919876543210", normalized)

	ok, _ = ValidatePhone("abc")
	assert.False(t, ok)

	ok, _ = ValidatePhone("12")
	assert.False(t, ok)
}
