package customer

import (
	"regexp"
	"strings"

	"fleet-rental-service/internal/domain"
)

// Name is a customer's display name, trimmed and length-bounded.
type Name struct {
	value string
}

// NewName validates and normalizes a customer name.
func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Name{}, domain.Errorf("Customer name cannot be empty.")
	}
	if len([]rune(trimmed)) < 2 {
		return Name{}, domain.Errorf("Customer name must have at least 2 characters.")
	}
	if len([]rune(trimmed)) > 100 {
		return Name{}, domain.Errorf("Customer name cannot exceed 100 characters.")
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email is a customer's email address, normalized to lower case at
// construction so equality is case-insensitive.
type Email struct {
	value string
}

// NewEmail validates and normalizes a customer email.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, domain.Errorf("Customer email cannot be empty.")
	}
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if !emailPattern.MatchString(cleaned) {
		return Email{}, domain.Errorf("Invalid email format: %s", value)
	}
	return Email{value: cleaned}, nil
}

func (e Email) String() string {
	return e.value
}
