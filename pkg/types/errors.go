package types

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by entity constructors and setters
// matches one of these with errors.Is.
var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrValidation   = errors.New("validation failed")
)

// Field validation errors; each wraps ErrValidation.
var (
	ErrInvalidName     = fmt.Errorf("%w: invalid name", ErrValidation)
	ErrInvalidCategory = fmt.Errorf("%w: invalid category", ErrValidation)
	ErrInvalidTitle    = fmt.Errorf("%w: invalid title", ErrValidation)
)

// ErrForeignArticle is returned by AddArticle when the article is linked to
// a different author or magazine than the receiver.
var ErrForeignArticle = errors.New("article belongs to another entity")
