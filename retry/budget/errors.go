package budget

import (
	"errors"
)

var (
	// ErrNoQuota is returned by a Budget which denies the retry
	ErrNoQuota = errors.New("no retry quota")

	errClosedBudget = errors.New("retry budget closed")
)
