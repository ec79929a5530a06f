package retry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ydb-platform/ydb-go-backoff/retry"
)

func ExampleBackoff() {
	polls := 0
	poll := func(yield func(string, error) bool) {
		polls++
		if polls < 3 {
			yield("", fmt.Errorf("poll #%d failed", polls))

			return
		}
		yield("ready", nil)
	}

	for v, err := range retry.Backoff(context.TODO(), poll, time.Millisecond,
		retry.WithMaxAttempts(5),
		retry.WithBeforeRetry(func(cause error, currentAttempt, totalAttempt int) {
			fmt.Printf("retry #%d: %v\n", totalAttempt, cause)
		}),
	) {
		if err != nil {
			fmt.Println(err)

			return
		}
		fmt.Println(v)
	}
	// Output:
	// retry #0: poll #1 failed
	// retry #1: poll #2 failed
	// ready
}

func ExampleBackoff_exhausted() {
	errUnavailable := errors.New("unavailable")
	poll := func(yield func(int, error) bool) {
		yield(0, errUnavailable)
	}

	for _, err := range retry.Backoff(context.TODO(), poll, time.Millisecond,
		retry.WithMaxAttempts(2),
		retry.WithJitterFactor(0),
		retry.WithRetriesExhausted(func(cause error) {
			fmt.Println("gave up:", cause)
		}),
	) {
		fmt.Println(errors.Is(err, errUnavailable))
	}
	// Output:
	// gave up: unavailable
	// true
}

func ExampleDo() {
	calls := 0
	v, err := retry.Do(context.TODO(), func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("connection reset")
		}

		return 42, nil
	}, time.Millisecond)
	fmt.Println(v, err)
	// Output:
	// 42 <nil>
}
