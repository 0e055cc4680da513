package sha256

import "hash"

var _ hash.Hash = (*Digest)(nil)

// Digest is an incremental SHA-256 computation implementing hash.Hash.
type Digest struct {
	s      State
	buf    [BlockSize]byte
	n      int
	length uint64
}

// New returns a Digest ready for writing.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset restores the initial state.
func (d *Digest) Reset() {
	d.s = iv
	d.n = 0
	d.length = 0
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block length in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Write adds p to the message. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	written := len(p)
	d.length += uint64(written)

	if d.n > 0 {
		m := copy(d.buf[d.n:], p)
		d.n += m
		p = p[m:]
		if d.n < BlockSize {
			return written, nil
		}
		d.s = d.s.Update(ParseBlock(d.buf[:]))
		d.n = 0
	}
	for len(p) >= BlockSize {
		d.s = d.s.Update(ParseBlock(p))
		p = p[BlockSize:]
	}
	d.n = copy(d.buf[:], p)
	return written, nil
}

// Sum appends the digest of the message written so far to in. The
// running state is left untouched.
func (d *Digest) Sum(in []byte) []byte {
	sum := d.Sum256()
	return append(in, sum[:]...)
}

// Sum256 returns the digest of the message written so far.
func (d *Digest) Sum256() [Size]byte {
	s := d.s
	for _, blk := range Pad(d.buf[:d.n], bitLength(d.length)) {
		s = s.Update(blk)
	}
	return s.Bytes()
}
