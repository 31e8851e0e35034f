package domain

import "errors"

// Auth errors. The HTTP layer maps the first three to 401 with identical
// client-facing wording so callers cannot probe which check failed.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownPrincipal   = errors.New("unknown principal")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Record errors.
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrEmployeeExists    = errors.New("employee already exists")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrAnimalExists      = errors.New("animal already exists")
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrProductExists     = errors.New("product already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrSaleExists        = errors.New("sale already exists")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderTotalMismatch = errors.New("order total mismatch")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrValidation        = errors.New("validation failed")
)
