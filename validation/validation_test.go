package validation

import (
	"strings"
	"testing"
)

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"valid name", "Ravi Kumar", true},
		{"minimum length", "Ana", true},
		{"empty", "", false},
		{"too short", "Al", false},
		{"too long", strings.Repeat("a", 41), false},
		{"digits rejected", "Ravi2 Kumar", false},
		{"symbols rejected", "Ravi@Kumar", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateFullName(tt.input)
			if (msg == "") != tt.valid {
				t.Errorf("ValidateFullName(%q) = %q, want valid=%v", tt.input, msg, tt.valid)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	if msg := ValidateEmail("a@gmail.com"); msg != "" {
		t.Errorf("a@gmail.com should be valid, got %q", msg)
	}
	if msg := ValidateEmail("a@yahoo.com"); msg == "" {
		t.Error("non-gmail domain should be rejected")
	}
	if msg := ValidateEmail(""); msg != "Email is required." {
		t.Errorf("empty email: got %q", msg)
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	if msg := ValidatePhoneNumber("9876543210"); msg != "" {
		t.Errorf("10 digits should be valid, got %q", msg)
	}
	for _, bad := range []string{"", "12345", "12345678901", "98765abcde"} {
		if msg := ValidatePhoneNumber(bad); msg == "" {
			t.Errorf("ValidatePhoneNumber(%q) should fail", bad)
		}
	}
}

func TestValidateAge(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"17", false},
		{"18", true},
		{"65", true},
		{"66", false},
		{"", false},
		{"abc", false},
	}
	for _, tt := range tests {
		msg := ValidateAge(tt.input)
		if (msg == "") != tt.valid {
			t.Errorf("ValidateAge(%q) = %q, want valid=%v", tt.input, msg, tt.valid)
		}
	}
}

func TestValidateAddress(t *testing.T) {
	if msg := ValidateAddress("12/4 MG Road, Flat #3, Pune - 411001"); msg != "" {
		t.Errorf("address with allowed symbols should be valid, got %q", msg)
	}
	if msg := ValidateAddress(strings.Repeat("a", 151)); msg == "" {
		t.Error("151-char address should be rejected")
	}
	if msg := ValidateAddress("Main St. $$$"); msg == "" {
		t.Error("disallowed symbols should be rejected")
	}
	if msg := ValidateAddress(""); msg == "" {
		t.Error("empty address should be rejected")
	}
}

func TestValidatePincode(t *testing.T) {
	if msg := ValidatePincode("411001"); msg != "" {
		t.Errorf("6-digit pincode should be valid, got %q", msg)
	}
	for _, bad := range []string{"", "41100", "4110011", "41100a"} {
		if msg := ValidatePincode(bad); msg == "" {
			t.Errorf("ValidatePincode(%q) should fail", bad)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if msg := ValidatePassword("secret"); msg != "" {
		t.Errorf("6-char password should be valid, got %q", msg)
	}
	if msg := ValidatePassword(strings.Repeat("x", 20)); msg != "" {
		t.Errorf("20-char password should be valid, got %q", msg)
	}
	if msg := ValidatePassword("short"); msg == "" {
		t.Error("5-char password should be rejected")
	}
	if msg := ValidatePassword(strings.Repeat("x", 21)); msg == "" {
		t.Error("21-char password should be rejected")
	}
}

func TestValidatePasswords(t *testing.T) {
	if msg := ValidatePasswords("oldpass", "newpass", "newpass"); msg != "" {
		t.Errorf("valid reset triple rejected: %q", msg)
	}
	tests := []struct {
		name                  string
		current, new, confirm string
		want                  string
	}{
		{"missing field", "", "newpass", "newpass", "All fields are required."},
		{"mismatch", "oldpass", "newpass", "other", "New passwords do not match."},
		{"too short", "oldpass", "abc", "abc", "New password must be at least 6 characters long."},
		{"same as current", "oldpass", "oldpass", "oldpass", "New password cannot be the same as the current password."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePasswords(tt.current, tt.new, tt.confirm); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateServiceName(t *testing.T) {
	if msg := ValidateServiceName("Plumbing Repair"); msg != "" {
		t.Errorf("valid service name rejected: %q", msg)
	}
	if msg := ValidateServiceName("Pipe"); msg == "" {
		t.Error("4-char service name should be rejected")
	}
	if msg := ValidateServiceName(strings.Repeat("a", 101)); msg == "" {
		t.Error("101-char service name should be rejected")
	}
	if msg := ValidateServiceName("Plumbing & Repair"); msg == "" {
		t.Error("non-alphanumeric service name should be rejected")
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"49", false},
		{"50", true},
		{"200000", true},
		{"200001", false},
		{"", false},
		{"12.50", false},
		{"-100", false},
	}
	for _, tt := range tests {
		msg := ValidatePrice(tt.input)
		if (msg == "") != tt.valid {
			t.Errorf("ValidatePrice(%q) = %q, want valid=%v", tt.input, msg, tt.valid)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	if msg := ValidateDescription("Fixes leaking taps and pipes."); msg != "" {
		t.Errorf("valid description rejected: %q", msg)
	}
	if msg := ValidateDescription(strings.Repeat("a", 500)); msg != "" {
		t.Errorf("500-char description should be valid, got %q", msg)
	}
	if msg := ValidateDescription(strings.Repeat("a", 501)); msg == "" {
		t.Error("501-char description should be rejected")
	}
	if msg := ValidateDescription(""); msg == "" {
		t.Error("empty description should be rejected")
	}
}

func TestValidateRegistrationReturnsFirstFailure(t *testing.T) {
	msg := ValidateRegistration("Ravi Kumar", "bad-email", "123", "17", "", "", "")
	if msg != "Email must be a valid gmail address (e.g., example@gmail.com)." {
		t.Errorf("expected the email failure first, got %q", msg)
	}

	if msg := ValidateRegistration(
		"Ravi Kumar", "ravi@gmail.com", "9876543210", "30",
		"12/4 MG Road", "411001", "secret123",
	); msg != "" {
		t.Errorf("valid registration rejected: %q", msg)
	}
}

func TestValidateServiceComposite(t *testing.T) {
	if msg := ValidateService("Plumbing Repair", "500", "Fixes taps"); msg != "" {
		t.Errorf("valid service form rejected: %q", msg)
	}
	if msg := ValidateService("Pipe", "500", "Fixes taps"); msg == "" {
		t.Error("invalid name should fail the composite check")
	}
	if msg := ValidateService("Plumbing Repair", "49", "Fixes taps"); msg == "" {
		t.Error("out-of-range price should fail the composite check")
	}
}
