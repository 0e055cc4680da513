package sha256

import (
	"errors"
	"fmt"
	"io"
)

// ErrRead reports that the message source failed before end of stream.
var ErrRead = errors.New("read message")

// Parser reads a message from a source and yields its padded blocks in
// order. It stages bytes in a single reusable block buffer.
type Parser struct {
	r       io.Reader
	stage   [BlockSize]byte
	n       int
	length  uint64
	blocks  uint64
	eof     bool
	pending []Block
	err     error
}

// NewParser returns a Parser reading from r. Wrap unbuffered sources in
// a bufio.Reader; the parser asks for at most one block per read.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// Next returns the next block. After the final padded block it returns
// io.EOF. A failing source yields an error wrapping ErrRead, and every
// later call returns the same error.
func (p *Parser) Next() (Block, error) {
	if len(p.pending) > 0 {
		return p.popPending(), nil
	}
	if p.err != nil {
		return Block{}, p.err
	}

	for p.n < BlockSize && !p.eof {
		m, err := p.r.Read(p.stage[p.n:])
		p.n += m
		p.length += uint64(m)
		if errors.Is(err, io.EOF) {
			p.eof = true
		} else if err != nil {
			p.err = fmt.Errorf("%w: %w", ErrRead, err)
			return Block{}, p.err
		}
	}

	if p.n == BlockSize {
		p.n = 0
		p.blocks++
		return ParseBlock(p.stage[:]), nil
	}

	p.pending = Pad(p.stage[:p.n], bitLength(p.length))
	p.n = 0
	p.err = io.EOF
	return p.popPending(), nil
}

func (p *Parser) popPending() Block {
	blk := p.pending[0]
	p.pending = p.pending[1:]
	p.blocks++
	return blk
}

// Len returns the number of message bytes read so far.
func (p *Parser) Len() uint64 { return p.length }

// BitLength returns the message length in bits, modulo 2^64.
func (p *Parser) BitLength() uint64 { return bitLength(p.length) }

// Blocks returns the number of blocks yielded so far.
func (p *Parser) Blocks() uint64 { return p.blocks }
