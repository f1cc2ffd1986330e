package schemakit

import "errors"

var (
	// ErrFrozen is the panic value raised when a sealed builder is mutated.
	ErrFrozen = errors.New("schemakit: result is frozen")

	// ErrMissingKey is returned by Result.Fetch when the key is not in the output.
	ErrMissingKey = errors.New("schemakit: key not found")
)
