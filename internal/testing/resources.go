package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks fails t if goroutines started by the test are still running.
// Defer it at the top of tests that fan work out to goroutines:
//
//	func TestConcurrentValidation(t *testing.T) {
//	    defer VerifyNoLeaks(t)
//	    // start and join workers
//	}
//
// Tests using it must not call t.Parallel.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()
	goleak.VerifyNone(t, ignoredGoroutines()...)
}

// Goroutines owned by the test runner itself.
func ignoredGoroutines() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
	}
}
