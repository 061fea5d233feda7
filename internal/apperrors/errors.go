package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials for the requested operation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRender indicates the receipt imaging backend could not produce the bitmap.
// This is fatal for the request; callers must never serve a partial image.
var ErrRender = errors.New("receipt render failure")
