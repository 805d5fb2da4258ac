package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrIncompleteRemoteStorage = errors.New("remote storage configuration is incomplete")
)

// MissingFieldsError lists the required fields that failed validation.
// It unwraps to ErrIncompleteRemoteStorage.
type MissingFieldsError struct {
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteRemoteStorage, strings.Join(e.Missing, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrIncompleteRemoteStorage
}
