package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// DocumentNotFound reports a lookup miss for id as ErrDocumentNotFound.
func DocumentNotFound(operation, id string) error {
	return WrapError(ErrDocumentNotFound, operation, fmt.Errorf("id=%s", id))
}

// NotFoundMessage is the caller-visible text for a missing document.
func NotFoundMessage(id string) string {
	return fmt.Sprintf("Document with ID %s not found", id)
}
