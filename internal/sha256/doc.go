// Package sha256 implements the SHA-256 message digest defined in FIPS 180-4.
//
// The package is split along the stages of the algorithm:
//
//   - [Parser] and [Pad] turn a byte stream into padded 512-bit blocks
//   - [Expand] builds the 64-word message schedule for one block
//   - [Compress] runs the 64 rounds over one schedule
//   - [Sum], [Fold] and [Digest] thread the hash state through every block
//
// The message bit length is kept in a 64-bit counter. Inputs of 2^61
// bytes or more wrap that counter modulo 2^64 and the resulting digest is
// not defined by the standard.
package sha256
