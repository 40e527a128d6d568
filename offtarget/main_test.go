package offtarget

import (
	"testing"

	"go.uber.org/goleak"
)

// Searches run on the caller's goroutine; nothing may outlive a test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
