package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Source is a random-access character cursor over a flat buffer. A scanning
// engine takes exclusive ownership of one Source; the engine is responsible
// for keeping every read inside [0, Len].
//
// PeekAt is undefined when the cursor plus offset reaches the end of the
// buffer; implementations return 0 but callers must not rely on it.
type Source interface {
	Pos() uint32
	Len() uint32
	EOF() bool
	Peek() byte
	PeekAt(off uint32) byte
	Advance(delta int32)
	Text(sp Span) string
}

// Buffer is the default in-memory Source implementation.
type Buffer struct {
	content []byte
	off     uint32
}

// NewBuffer wraps content in a Buffer with the cursor at 0.
func NewBuffer(content []byte) *Buffer {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	return &Buffer{content: content}
}

// FromString wraps s in a Buffer with the cursor at 0.
func FromString(s string) *Buffer {
	return NewBuffer([]byte(s))
}

// Pos returns the current cursor offset.
func (b *Buffer) Pos() uint32 {
	return b.off
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() uint32 {
	return uint32(len(b.content))
}

// EOF reports whether the cursor is at the end of the buffer.
func (b *Buffer) EOF() bool {
	return b.off >= b.Len()
}

// Peek reads the byte at the cursor, or 0 at EOF.
func (b *Buffer) Peek() byte {
	if b.EOF() {
		return 0
	}
	return b.content[b.off]
}

// PeekAt reads the byte at cursor+off, or 0 if that is past the end.
func (b *Buffer) PeekAt(off uint32) byte {
	if b.off+off >= b.Len() {
		return 0
	}
	return b.content[b.off+off]
}

// Advance moves the cursor by delta bytes. Negative deltas undo speculative
// consumption. Moving outside [0, Len] is a caller bug.
func (b *Buffer) Advance(delta int32) {
	next := int64(b.off) + int64(delta)
	if next < 0 || next > int64(b.Len()) {
		panic(fmt.Errorf("cursor out of range: %d+%d not in [0,%d]", b.off, delta, b.Len()))
	}
	b.off = uint32(next)
}

// Text resolves a span to the text it covers.
func (b *Buffer) Text(sp Span) string {
	if sp.End() > b.Len() {
		panic(fmt.Errorf("span out of range: %s exceeds length %d", sp, b.Len()))
	}
	return string(b.content[sp.Start:sp.End()])
}
