package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that an operation conflicts with the current
// lifecycle state of an entity (e.g., an illegal status transition).
// Distinct from ErrValidation so the transport layer can map it to a
// conflict response instead of a bad-request one.
var ErrInvalidState = errors.New("invalid state")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")
