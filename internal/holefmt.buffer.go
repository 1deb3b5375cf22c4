package internal

// Buffer is an append-only byte buffer that starts in caller-supplied
// storage and doubles its capacity when that storage is exhausted.
//
// A Buffer is consumed exactly once by String. Writing to a consumed
// Buffer panics.
type Buffer struct {
	b        []byte
	released bool
}

// NewBuffer creates a Buffer writing into initial[:0]. Pass a slice of a
// fixed-size array to keep short outputs off the heap until String.
func NewBuffer(initial []byte) Buffer {
	return Buffer{b: initial[:0]}
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int {
	return len(buf.b)
}

// Cap returns the current capacity.
func (buf *Buffer) Cap() int {
	return cap(buf.b)
}

// Grow makes room for at least n more bytes, doubling the capacity when
// that is enough and growing to exactly the required size otherwise.
func (buf *Buffer) Grow(n int) {
	buf.checkLive()
	free := cap(buf.b) - len(buf.b)
	if n <= free {
		return
	}
	need := len(buf.b) + n
	newCap := cap(buf.b) * 2
	if newCap < need {
		newCap = need
	}
	nb := make([]byte, len(buf.b), newCap)
	copy(nb, buf.b)
	buf.b = nb
}

// WriteByte appends a single byte. It never fails.
func (buf *Buffer) WriteByte(c byte) error {
	buf.Grow(1)
	buf.b = append(buf.b, c)
	return nil
}

// WriteString appends s. It never fails.
func (buf *Buffer) WriteString(s string) (int, error) {
	buf.Grow(len(s))
	buf.b = append(buf.b, s...)
	return len(s), nil
}

// String copies the contents into a new string and releases the buffer.
func (buf *Buffer) String() string {
	buf.checkLive()
	s := string(buf.b)
	buf.b = nil
	buf.released = true
	return s
}

func (buf *Buffer) checkLive() {
	if buf.released {
		panic(PanicMsgBufferReleased)
	}
}
