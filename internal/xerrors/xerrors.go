package xerrors

import (
	"context"
	"errors"
)

func ErrIf(cond bool, err error) error {
	if cond {
		return err
	}

	return nil
}

// IsContextError reports whether err is caused by context cancellation or deadline
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
