package protocol

import "encoding/binary"

// Reader is a forward-only cursor over a decode buffer. The first failure
// sticks: every later read becomes a no-op returning a zero value, and Err
// reports the original cause.
type Reader struct {
	pos  int
	err  error
	data []byte
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Err returns the first error encountered while reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.pos
}

// Remaining returns the number of unread bytes left in the buffer.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) require(n int) bool {
	if r.err != nil {
		return false
	}
	if r.Remaining() < n {
		r.err = NewProtocolException(ExceptionMalformedHeader,
			"Need %d more bytes but only %d remain", n, r.Remaining())
		return false
	}
	return true
}

func (r *Reader) Int16() int16 {
	if !r.require(2) {
		return 0
	}
	v := int16(binary.BigEndian.Uint16(r.data[r.pos : r.pos+2]))
	r.pos += 2
	return v
}

func (r *Reader) Int32() int32 {
	if !r.require(4) {
		return 0
	}
	v := int32(binary.BigEndian.Uint32(r.data[r.pos : r.pos+4]))
	r.pos += 4
	return v
}

// String reads an int16 byte-length prefix followed by that many raw UTF-8
// bytes. A negative length is invalid at this protocol version.
func (r *Reader) String() string {
	l := r.Int16()
	if r.err != nil {
		return ""
	}
	if l < 0 {
		r.err = NewProtocolException(ExceptionMalformedHeader,
			"Invalid string length %d", l)
		return ""
	}
	if !r.require(int(l)) {
		return ""
	}
	v := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return v
}
