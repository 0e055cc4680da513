package sha256

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// State is the running hash value H[0..7].
type State [8]uint32

// InitialState returns the SHA-256 initial hash value.
func InitialState() State { return iv }

// Update folds one block into s.
func (s State) Update(b Block) State {
	w := Expand(b)
	return Compress(s, &w)
}

// Bytes serializes the state as a digest, each word most significant
// byte first.
func (s State) Bytes() [Size]byte {
	var out [Size]byte
	for i, v := range s {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Fold drains p and returns the state after its final block.
func Fold(p *Parser) (State, error) {
	s := iv
	for {
		blk, err := p.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return State{}, err
		}
		s = s.Update(blk)
	}
}

// Sum returns the digest of everything read from r. An empty source is
// valid; only a failing source is an error.
func Sum(r io.Reader) ([Size]byte, error) {
	s, err := Fold(NewParser(r))
	if err != nil {
		return [Size]byte{}, err
	}
	return s.Bytes(), nil
}

// SumBytes returns the digest of p.
func SumBytes(p []byte) [Size]byte {
	// bytes.Reader never fails.
	sum, _ := Sum(bytes.NewReader(p))
	return sum
}

// SumBlocks folds an already padded block sequence in order and returns
// the resulting digest.
func SumBlocks(blocks []Block) [Size]byte {
	s := iv
	for _, b := range blocks {
		s = s.Update(b)
	}
	return s.Bytes()
}
