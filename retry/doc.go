// Package retry re-subscribes to a failing sequence with exponential backoff and jitter.
//
// A sequence is an iter.Seq2[T, error]. Every ranging over it is a subscription,
// a non-nil error ends the subscription with a failure.
// Backoff forwards values of successful segments unchanged and hides failures
// until the policy gives up.
package retry
