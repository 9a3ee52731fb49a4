package repository

import "errors"

// ErrInvalidCommentID is returned by the delete path when the comment id is
// not a valid 24-hex object identifier. The store is never touched in that case.
var ErrInvalidCommentID = errors.New("invalid comment id")

// InvalidOperationError is returned when an identifier fails format validation
// on a write path, or when the store rejects an insert or update. The
// underlying driver message is preserved in Reason.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "invalid comment operation: " + e.Reason
}

// IsInvalidOperation reports whether err is an InvalidOperationError
func IsInvalidOperation(err error) bool {
	var opErr *InvalidOperationError
	return errors.As(err, &opErr)
}
