package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// HospitalRequest binds the slug-or-id path segment.
type HospitalRequest struct {
	Key string `param:"slug"`
}

// GalleryRequest binds the lightbox route.
type GalleryRequest struct {
	Key   string `param:"slug"`
	Index int    `param:"index" validate:"gte=0"`
}
