package validation

import (
	"regexp"
	"strconv"
)

// Each validator takes the raw form value and returns "" when valid or a
// human-readable reason otherwise. They are pure and never touch the
// network or database; handlers run them before any write is attempted.

var (
	fullNameRegex    = regexp.MustCompile(`^[A-Za-z\s]{3,40}$`)
	emailRegex       = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@gmail\.com$`)
	phoneRegex       = regexp.MustCompile(`^\d{10}$`)
	addressRegex     = regexp.MustCompile(`^[A-Za-z0-9\s/#,.@-]{1,150}$`)
	pincodeRegex     = regexp.MustCompile(`^\d{6}$`)
	serviceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	digitsRegex      = regexp.MustCompile(`^\d+$`)
)

func ValidateFullName(fullName string) string {
	if fullName == "" {
		return "Full name is required."
	}
	if !fullNameRegex.MatchString(fullName) {
		return "Full name must be 3-40 letters and contain only alphabetic characters."
	}
	return ""
}

func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required."
	}
	if !emailRegex.MatchString(email) {
		return "Email must be a valid gmail address (e.g., example@gmail.com)."
	}
	return ""
}

func ValidatePhoneNumber(phone string) string {
	if phone == "" {
		return "Phone number is required."
	}
	if !phoneRegex.MatchString(phone) {
		return "Phone number must be exactly 10 digits."
	}
	return ""
}

func ValidateAge(age string) string {
	if age == "" {
		return "Age is required."
	}
	ageNum, err := strconv.Atoi(age)
	if err != nil || ageNum < 18 || ageNum > 65 {
		return "Age must be between 18 and 65."
	}
	return ""
}

func ValidateAddress(address string) string {
	if address == "" {
		return "Address is required."
	}
	if !addressRegex.MatchString(address) {
		return "Address can contain letters, numbers, spaces, and /#,.@- up to 150 characters."
	}
	return ""
}

func ValidatePincode(pincode string) string {
	if pincode == "" {
		return "Pincode is required."
	}
	if !pincodeRegex.MatchString(pincode) {
		return "Pincode must be exactly 6 digits."
	}
	return ""
}

// ValidatePassword only enforces length. The message promises a character
// mix the original policy never checked; kept until the policy is settled.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required."
	}
	if len(password) < 6 || len(password) > 20 {
		return "Password must be 6-20 characters long and include letters, numbers, or symbols."
	}
	return ""
}

// ValidatePasswords checks a password-reset triple.
func ValidatePasswords(currentPassword, newPassword, confirmNewPassword string) string {
	if currentPassword == "" || newPassword == "" || confirmNewPassword == "" {
		return "All fields are required."
	}
	if newPassword != confirmNewPassword {
		return "New passwords do not match."
	}
	if len(newPassword) < 6 {
		return "New password must be at least 6 characters long."
	}
	if newPassword == currentPassword {
		return "New password cannot be the same as the current password."
	}
	return ""
}

func ValidateServiceName(serviceName string) string {
	if serviceName == "" {
		return "Service Name is required."
	}
	if len(serviceName) < 5 || len(serviceName) > 100 {
		return "Service Name must be between 5 and 100 characters."
	}
	if !serviceNameRegex.MatchString(serviceName) {
		return "Service Name must contain only alphanumeric characters."
	}
	return ""
}

func ValidatePrice(price string) string {
	if price == "" {
		return "Price is required."
	}
	if !digitsRegex.MatchString(price) {
		return "Price must be a valid numeric value."
	}
	priceValue, err := strconv.Atoi(price)
	if err != nil || priceValue < 50 || priceValue > 200000 {
		return "Price must be between ₹50 and ₹200,000."
	}
	return ""
}

func ValidateDescription(description string) string {
	if description == "" {
		return "Description is required."
	}
	if len([]rune(description)) > 500 {
		return "Description must not exceed 500 characters."
	}
	return ""
}

// ValidateRegistration runs every registration validator and returns the
// first failure.
func ValidateRegistration(fullName, email, phone, age, address, pincode, password string) string {
	checks := []string{
		ValidateFullName(fullName),
		ValidateEmail(email),
		ValidatePhoneNumber(phone),
		ValidateAge(age),
		ValidateAddress(address),
		ValidatePincode(pincode),
		ValidatePassword(password),
	}
	for _, msg := range checks {
		if msg != "" {
			return msg
		}
	}
	return ""
}

// ValidateService runs the service-form validators and returns the first
// failure.
func ValidateService(name, price, description string) string {
	checks := []string{
		ValidateServiceName(name),
		ValidatePrice(price),
		ValidateDescription(description),
	}
	for _, msg := range checks {
		if msg != "" {
			return msg
		}
	}
	return ""
}
