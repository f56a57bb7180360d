package services

import (
	"errors"
	"testing"
)

func TestValidateMobilePhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"01012345678", true},
		{"01112345678", true},
		{"01212345678", true},
		{"01512345678", true},
		{"+201012345678", true},
		{"0101234567", false},  // one digit short
		{"010123456789", false}, // one digit long
		{"01312345678", false},  // 013 is not a carrier prefix
		{"201012345678", false}, // country code without the plus
		{"+201312345678", false},
		{"0101234567a", false},
		{"", false},
	}

	for _, testCase := range cases {
		err := ValidateMobilePhone(testCase.phone)
		if testCase.valid && err != nil {
			t.Errorf("phone %q: expected valid, got %v", testCase.phone, err)
		}
		if !testCase.valid && err == nil {
			t.Errorf("phone %q: expected rejection", testCase.phone)
		}
	}

	var fieldErr *FieldError
	if err := ValidateMobilePhone("123"); !errors.As(err, &fieldErr) || fieldErr.Field != "mobile_phone" {
		t.Fatalf("expected a mobile_phone field error, got %v", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"StrongPass1", true},
		{"abcdefgh", true},
		{"short1a", false},
		{"12345678", false},
		{"123456789012", false},
		{"1234567a", true},
		{"", false},
	}

	for _, testCase := range cases {
		err := ValidatePasswordStrength(testCase.password)
		if testCase.valid && err != nil {
			t.Errorf("password %q: expected valid, got %v", testCase.password, err)
		}
		if !testCase.valid && err == nil {
			t.Errorf("password %q: expected rejection", testCase.password)
		}
	}
}

func TestNormalizeAuthEmail(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  spaced@example.com  ", "spaced@example.com"},
		{"plain@example.com", "plain@example.com"},
		{"not-an-email", ""},
		{"missing@domain@twice.com", ""},
		{"", ""},
	}

	for _, testCase := range cases {
		if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
			t.Errorf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}
