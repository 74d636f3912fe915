package services

import "errors"

// ErrValidation marks an input the operation refuses to apply (note too long,
// swap to the same CV, unknown status). Wrap it with detail via fmt.Errorf.
var ErrValidation = errors.New("validation failed")

// ErrForbidden marks an operation on a record that exists but is owned by
// someone else.
var ErrForbidden = errors.New("forbidden")
