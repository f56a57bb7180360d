package services

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// Accepted mobile numbers: 11-digit Egyptian local format (01X...) or the
// same number behind the +20 country code. 010/011/012/015 prefixes.
var egyptianMobileRegex = regexp.MustCompile(`^(\+201|01)[0-5][0-9]{8}$`)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func ValidateMobilePhone(raw string) error {
	phone := strings.TrimSpace(raw)
	if !egyptianMobileRegex.MatchString(phone) {
		return fieldError("mobile_phone", "Enter a valid Egyptian mobile number (e.g. 010XXXXXXXX or +2010XXXXXXXX).")
	}
	return nil
}

// ValidatePasswordStrength enforces a minimum length of 8 and rejects
// entirely numeric passwords.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return fieldError("password", "Password must be at least 8 characters.")
	}

	allDigits := true
	for _, char := range password {
		if !unicode.IsDigit(char) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return fieldError("password", "Password cannot be entirely numeric.")
	}
	return nil
}
