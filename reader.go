package nlzss

import "io"

// sliceByteReader reads forward through a byte slice and remembers how far
// it got, so block decoders can report consumed bytes.
type sliceByteReader struct {
	data []byte
	pos  int
}

// countingByteReader wraps an io.ByteReader and counts bytes read from it.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads the next byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the wrapped reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
