//go:build unit

package memsample

import (
	"github.com/stretchr/testify/assert"
	"runtime"
	"testing"
)

func TestRuntime_HeapBytes(t *testing.T) {
	t.Run("reports at least the size of a large live allocation", func(t *testing.T) {
		// Prepare
		buf := make([]byte, 1<<24)

		// Execute
		heapBytes, ok := Runtime{}.HeapBytes()

		// Check
		assert.True(t, ok, "reading is supported")
		assert.GreaterOrEqual(t, heapBytes, uint64(1<<24), "live allocation is visible in the sample")

		// Clean up
		runtime.KeepAlive(buf)
	})

	t.Run("reports growth when more memory is retained", func(t *testing.T) {
		// Prepare
		before, ok := Runtime{}.HeapBytes()
		assert.True(t, ok, "reading is supported")

		// Execute
		buf := make([]byte, 1<<24)
		after, ok := Runtime{}.HeapBytes()

		// Check
		assert.True(t, ok, "reading is supported")
		assert.Greater(t, after, before, "sample grows with the retained allocation")

		// Clean up
		runtime.KeepAlive(buf)
	})
}

func TestUnsupported_HeapBytes(t *testing.T) {
	t.Run("never produces a reading", func(t *testing.T) {
		// Execute
		heapBytes, ok := Unsupported{}.HeapBytes()

		// Check
		assert.False(t, ok, "reading is not supported")
		assert.Equal(t, uint64(0), heapBytes, "sampled value is zero")
	})
}
