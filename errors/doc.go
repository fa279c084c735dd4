/*
Package errors provides semantic error types for the icon registry.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound        = errors.New("not found")
	    ErrUnknownKey      = errors.New("unknown icon key")
	    ErrAlreadyExists   = errors.New("already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	)

Usage:

	// Symbolic keys must exist; a miss is a caller bug
	svg, err := reg.Lookup("warning")
	if err != nil {
	    if errors.IsUnknownKey(err) {
	        return fmt.Errorf("icon picker references a missing icon: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewUnknownKeyError("nonexistent")
	err := errors.NewAlreadyExistsError("icon key", "link")
	err := errors.NewValidationError("svg", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
