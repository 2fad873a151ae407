package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found,
// or that it exists but does not belong to the caller's organization.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
