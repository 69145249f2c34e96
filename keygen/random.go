package keygen

import "time"

// randomInitV - Initial value of the v state word, from the Ran generator in Numerical Recipes 3rd edition
const randomInitV uint64 = 4101842887655102017

// randomMultLCG - Multiplier of the linear congruential step
const randomMultLCG uint64 = 2862933555777941757

// randomIncLCG - Increment of the linear congruential step
const randomIncLCG uint64 = 7046029254386353087

// randomMultMWC - Multiplier of the multiply with carry step
const randomMultMWC uint64 = 4294957665

// Random - Key generator producing a pseudo random stream of 64 bit keys using the combined
// generator from Numerical Recipes 3rd edition, an LCG, a 64 bit xorshift and a multiply with
// carry run in parallel over three words of state. The full 64 bit output is used as key.
//
// A seed of zero is replaced by the current time, which gives distinct streams from run to run.
// A non zero seed is used as is, which gives bit identical streams for equal seeds.
type Random struct {
	u uint64
	v uint64
	w uint64
}

// NewRandom - Returns a pointer to a new Random key generator
//   - seed is the stream selector, zero selects a time based seed and any other value is used as is
func NewRandom(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	r := &Random{v: randomInitV, w: 1}
	r.u = seed ^ r.v
	r.Next()
	r.v = r.u
	r.Next()
	r.w = r.v
	r.Next()

	return r
}

// Next - Returns the next key in the stream and advances the three words of state
func (R *Random) Next() (key uint64) {
	R.u = R.u*randomMultLCG + randomIncLCG
	R.v ^= R.v >> 17
	R.v ^= R.v << 31
	R.v ^= R.v >> 8
	R.w = randomMultMWC*(R.w&0xffffffff) + (R.w >> 32)

	x := R.u ^ (R.u << 21)
	x ^= x >> 35
	x ^= x << 4

	key = (x + R.v) ^ R.w
	return
}
