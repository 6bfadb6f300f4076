package trajwriter

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned by Validate and NewWriter when a
// StructuredWriterConfig is malformed. Its message is part of the public
// contract: callers (and tests) match on substrings of it.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func invalidArgumentf(format string, args ...any) error {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

// ErrTooManyColumns is returned by Append when the supplied step has more
// slots than the writer has source columns for. This is a precondition
// violation, not a recoverable runtime condition.
var ErrTooManyColumns = errors.New("trajwriter: append step has more columns than configured")

// ErrNoPatterns is returned by NewWriter when no configs are supplied.
var ErrNoPatterns = errors.New("trajwriter: writer requires at least one pattern")
