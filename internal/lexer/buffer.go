package lexer

import (
	"errors"
	"io"
	"syscall"
)

// defaultBufferSize is the buffer capacity C used when the caller does not
// override it with WithBufferSize. It matches the 16*16*4096 byte buffer
// srcFacts.cpp/identity.cpp allocate for the same parser.
const defaultBufferSize = 16 * 16 * 4096

// minBufferSize is the smallest capacity buffer accepts. A buffer can't be
// smaller than the classifier's lookahead plus a little breathing room.
const minBufferSize = 4096

// buffer is a fixed-capacity byte buffer with two indices bounding the
// unconsumed region [cursor, cursorEnd). It is and MUST be treated as
// immutable by every lexer except refill, which alone may shift and extend
// the unconsumed region.
//
// Ownership mirrors bored-engineer/fastxml's Scanner/Decoder (buf, pos,
// length fields): data is private to the buffer, lexers borrow slices into
// it and those slices are only valid until the next refill.
type buffer struct {
	data      []byte
	cursor    int
	cursorEnd int
}

func newBuffer(size int) *buffer {
	if size < minBufferSize {
		size = minBufferSize
	}
	return &buffer{data: make([]byte, size)}
}

// unread returns the unconsumed region [cursor, cursorEnd).
func (b *buffer) unread() []byte {
	return b.data[b.cursor:b.cursorEnd]
}

// remaining is the number of unconsumed bytes.
func (b *buffer) remaining() int {
	return b.cursorEnd - b.cursor
}

// atTerminal reports whether the buffer has reached the end-of-stream
// marker refill sets on EOF: cursor == cursorEnd == len(data).
func (b *buffer) atTerminal() bool {
	return b.cursor == b.cursorEnd && b.cursorEnd == len(b.data)
}

// refill compacts the unconsumed region to offset 0 and reads more bytes
// from r into the tail of the buffer. On EOF with no unconsumed bytes left
// to read it sets cursor = cursorEnd = len(data) as a terminal marker and
// returns (0, nil); the driver interprets that marker, not the error, to
// decide whether parsing should stop. On any other read error it returns
// (0, err).
func (b *buffer) refill(r io.Reader) (int, error) {
	unprocessed := b.remaining()
	if unprocessed > 0 && b.cursor > 0 {
		copy(b.data[:unprocessed], b.data[b.cursor:b.cursorEnd])
	}
	b.cursor = 0
	b.cursorEnd = unprocessed
	for {
		if b.cursorEnd == len(b.data) {
			// Buffer is full of unconsumed bytes with nowhere to read into;
			// the caller asked for a token larger than the buffer.
			return 0, errBufferFull
		}
		n, err := r.Read(b.data[b.cursorEnd:])
		if n > 0 {
			b.cursorEnd += n
			return n, nil
		}
		if err == nil {
			// A zero-byte, no-error read is legal per io.Reader but
			// pointless here; retry exactly as the C++ refillBuffer loops
			// on EINTR.
			continue
		}
		if errors.Is(err, syscall.EINTR) {
			// Interrupted by a signal before any byte arrived: retry.
			continue
		}
		if err == io.EOF {
			b.cursor = len(b.data)
			b.cursorEnd = len(b.data)
			return 0, nil
		}
		return 0, err
	}
}
