package sha256

import "math/bits"

// Schedule is the expanded message schedule W[0..63] for one block.
type Schedule [scheduleWords]uint32

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

func sigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// Expand builds the message schedule for b. Arithmetic wraps modulo 2^32.
func Expand(b Block) Schedule {
	var w Schedule
	copy(w[:], b[:])
	for i := blockWords; i < scheduleWords; i++ {
		w[i] = sigma1(w[i-2]) + w[i-7] + sigma0(w[i-15]) + w[i-16]
	}
	return w
}
