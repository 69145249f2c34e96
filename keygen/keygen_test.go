//go:build unit

package keygen

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestSequential_Next(t *testing.T) {
	t.Run("returns the seed as the first key", func(t *testing.T) {
		// Prepare
		kg := NewSequential(100)

		// Execute
		key := kg.Next()

		// Check
		assert.Equal(t, uint64(100), key, "first key is the seed")
	})

	t.Run("returns consecutive keys", func(t *testing.T) {
		// Prepare
		kg := NewSequential(0)

		// Execute and Check
		for i := uint64(0); i < 1000; i++ {
			assert.Equal(t, i, kg.Next(), "keys increase by one")
		}
	})

	t.Run("restarts the stream on reconstruction", func(t *testing.T) {
		// Prepare
		kgA := NewSequential(7)
		first := kgA.Next()
		for i := 0; i < 100; i++ {
			kgA.Next()
		}

		// Execute
		kgB := NewSequential(7)

		// Check
		assert.Equal(t, first, kgB.Next(), "reconstruction reproduces the first key")
	})
}

func TestRandom_Next(t *testing.T) {
	t.Run("produces the documented stream for a fixed seed", func(t *testing.T) {
		// Prepare
		expected := []uint64{
			2235175048639730301,
			6425562075534813739,
			3657314841840734556,
			9434979886461576346,
			1943253282200294373,
			7151416262339826735,
		}

		kg := NewRandom(42)

		// Execute
		keys := make([]uint64, len(expected))
		for i := range keys {
			keys[i] = kg.Next()
		}

		// Check
		assert.Equal(t, expected, keys, "stream matches the reference values")
	})

	t.Run("produces identical streams for equal non zero seeds", func(t *testing.T) {
		// Prepare
		kgA := NewRandom(899)
		kgB := NewRandom(899)

		// Execute and Check
		for i := 0; i < 1000; i++ {
			assert.Equal(t, kgA.Next(), kgB.Next(), "streams are bit identical")
		}
	})

	t.Run("produces different streams for different seeds", func(t *testing.T) {
		// Prepare
		kgA := NewRandom(1)
		kgB := NewRandom(2)

		// Execute
		keysA := make([]uint64, 10)
		keysB := make([]uint64, 10)
		for i := 0; i < 10; i++ {
			keysA[i] = kgA.Next()
			keysB[i] = kgB.Next()
		}

		// Check
		assert.NotEqual(t, keysA, keysB, "streams differ")
	})

	t.Run("produces different streams for zero seeds taken at different times", func(t *testing.T) {
		// Prepare
		kgA := NewRandom(0)
		time.Sleep(25 * time.Millisecond)
		kgB := NewRandom(0)

		// Execute
		keysA := make([]uint64, 10)
		keysB := make([]uint64, 10)
		for i := 0; i < 10; i++ {
			keysA[i] = kgA.Next()
			keysB[i] = kgB.Next()
		}

		// Check
		assert.NotEqual(t, keysA, keysB, "streams differ")
	})

	t.Run("produces no duplicates over a short horizon", func(t *testing.T) {
		// Prepare
		kg := NewRandom(42)
		seen := make(map[uint64]bool)

		// Execute
		for i := 0; i < 100000; i++ {
			seen[kg.Next()] = true
		}

		// Check
		assert.Equal(t, 100000, len(seen), "all keys distinct")
	})
}
