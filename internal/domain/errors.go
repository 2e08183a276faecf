package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for lookups against the hospital registry.
var (
	ErrNotFound = errors.New("requested resource not found")
)

// NotFoundError reports a hospital id or slug that is not in the registry.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	// Kind is the kind of key that failed, "id" or "slug".
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hospital %s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IDNotFound builds a NotFoundError for a numeric id.
func IDNotFound(id int) *NotFoundError {
	return &NotFoundError{Kind: "id", Key: fmt.Sprint(id)}
}

// SlugNotFound builds a NotFoundError for a slug or free-form lookup key.
func SlugNotFound(slug string) *NotFoundError {
	return &NotFoundError{Kind: "slug", Key: slug}
}
