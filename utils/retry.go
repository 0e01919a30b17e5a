package utils

import "time"

// WithRetry runs op up to attempts times, doubling the wait between tries.
// Used for primary mutations only; the notification side channel stays
// fire-and-forget and must not come through here.
func WithRetry(attempts int, initial time.Duration, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	wait := initial
	var err error
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(wait)
			wait *= 2
		}
	}
	return err
}
