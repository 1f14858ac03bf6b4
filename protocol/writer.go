package protocol

import (
	"encoding/binary"
	"math"
)

// Writer appends protocol primitives to an owned buffer. Writing into memory
// cannot fail, so there is no error path; a value that cannot be framed at
// all is a programming defect and panics.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Int16(value int16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(value))
}

func (w *Writer) Int32(value int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(value))
}

// String writes an int16 byte-length prefix followed by the raw UTF-8 bytes.
// A string longer than the prefix can carry would misframe everything after
// it, so it panics with a string_too_long exception.
func (w *Writer) String(value string) {
	if len(value) > math.MaxInt16 {
		panic(NewProtocolException(ExceptionStringTooLong,
			"String of %d bytes does not fit an int16 length prefix", len(value)))
	}
	w.Int16(int16(len(value)))
	w.buf = append(w.buf, value...)
}

// Data returns the bytes written so far.
func (w *Writer) Data() []byte {
	return w.buf
}
