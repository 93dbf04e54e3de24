/*
errors.go - Error taxonomy shared by the ledger, the sale engine, the
directory and the transport layers.

Services return sentinels (or structured errors that unwrap to them).
The RPC layer converts them to gRPC status codes and back, the gateway
converts them to HTTP statuses. Callers classify with errors.Is.
*/
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned when a movement would drive a
	// product's quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrProductInactive is returned when selling a soft-disabled product.
	ErrProductInactive = errors.New("product is inactive")

	// ErrInvalidQuantity is returned for zero, negative or missing quantities.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate is returned on unique-field collisions (phone, username).
	ErrDuplicate = errors.New("duplicate value")

	// ErrStoreUnavailable is returned when the database cannot be reached.
	// It is the only retryable kind.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrHasHistory is returned when purging a record that sales or
	// movements still reference.
	ErrHasHistory = errors.New("record has history")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrTokenExpired       = errors.New("token has expired")
)

// NotFoundError names the missing entity.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// InsufficientStockError reports the remaining quantity.
type InsufficientStockError struct {
	ProductID int64
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: %d left, %d requested",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidInputError describes which field was rejected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Invalid builds an InvalidInputError.
func Invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsRetryable reports whether the call may succeed if repeated unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsClientError reports whether the caller must change the request.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrProductInactive) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrHasHistory)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
