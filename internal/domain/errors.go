package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors marking the kind of a domain failure. Constructors below
// attach the offending identifier while keeping the sentinel matchable with
// errors.Is.
var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRentalNotFound   = errors.New("rental not found")

	// ErrCustomerHasActiveRental marks the one-active-rental-per-customer rule.
	ErrCustomerHasActiveRental = errors.New("customer already has an active rental")
)

// Error is a domain rule violation: malformed input, an invalid state
// transition, or a business rule the current state disallows.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// Errorf builds a domain rule violation with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// IsRuleViolation reports whether err (or anything it wraps) is a domain rule
// violation as opposed to a not-found or infrastructure error.
func IsRuleViolation(err error) bool {
	var de *Error
	return errors.As(err, &de)
}

// kindError carries a human-readable message while unwrapping to one of the
// sentinels above.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// VehicleNotFound builds an ErrVehicleNotFound naming the vehicle.
func VehicleNotFound(id fmt.Stringer) error {
	return &kindError{kind: ErrVehicleNotFound, msg: fmt.Sprintf("Vehicle with ID %s was not found.", id)}
}

// CustomerNotFound builds an ErrCustomerNotFound naming the customer.
func CustomerNotFound(id fmt.Stringer) error {
	return &kindError{kind: ErrCustomerNotFound, msg: fmt.Sprintf("Customer with ID %s was not found.", id)}
}

// RentalNotFound builds an ErrRentalNotFound naming the rental.
func RentalNotFound(id fmt.Stringer) error {
	return &kindError{kind: ErrRentalNotFound, msg: fmt.Sprintf("Rental with ID %s was not found.", id)}
}

// CustomerHasActiveRental builds an ErrCustomerHasActiveRental naming the
// customer.
func CustomerHasActiveRental(id fmt.Stringer) error {
	return &kindError{kind: ErrCustomerHasActiveRental, msg: fmt.Sprintf("Customer %s already has an active rental.", id)}
}
