package sha256

import "encoding/binary"

// Block is one 512-bit message block as sixteen big-endian words.
type Block [blockWords]uint32

// Word assembles the first four bytes of b into a big-endian word.
func Word(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// ParseBlock packs the first BlockSize bytes of b into a Block.
// It panics if b is shorter than BlockSize.
func ParseBlock(b []byte) Block {
	_ = b[BlockSize-1]
	var blk Block
	for i := range blk {
		blk[i] = Word(b[i*4:])
	}
	return blk
}

// Pad returns the final block or blocks of a message. tail holds the
// message bytes that did not fill a whole block and bitLen is the length
// of the entire unpadded message in bits.
//
// The 0x80 marker lands right after tail. When the marker sits at offset
// 56 or later there is no room for the length field and a second block
// carrying only zeros and the length is appended.
func Pad(tail []byte, bitLen uint64) []Block {
	if len(tail) >= BlockSize {
		panic("sha256: pad tail must be shorter than a block")
	}
	var buf [2 * BlockSize]byte
	n := copy(buf[:], tail)
	buf[n] = padByte

	end := BlockSize
	if n >= lengthOffset {
		end = 2 * BlockSize
	}
	binary.BigEndian.PutUint64(buf[end-8:end], bitLen)

	blocks := make([]Block, 0, end/BlockSize)
	for off := 0; off < end; off += BlockSize {
		blocks = append(blocks, ParseBlock(buf[off:]))
	}
	return blocks
}

// bitLength converts a byte count to the length field value. The shift
// wraps modulo 2^64.
func bitLength(n uint64) uint64 {
	return n << 3
}
