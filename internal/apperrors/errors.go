package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTemplateUnavailable indicates that a document template could not be
// resolved even after provisioning the built-in defaults.
var ErrTemplateUnavailable = errors.New("template not available")

// ErrRenderFailure indicates that template execution failed and the fixed
// error document was substituted for the requested one.
var ErrRenderFailure = errors.New("render failure")
