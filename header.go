package nlzss

import (
	"errors"
	"fmt"
	"io"
)

// Header is the parsed block header: the variant tag and the declared
// decoded length.
type Header struct {
	Variant    Variant
	DecodedLen int
}

// ReadHeader consumes and parses the block header from r. The header is the
// tag byte followed by a 24-bit little-endian decoded length; a zero 24-bit
// field means the real length follows as 32-bit little-endian. ReadHeader
// leaves r positioned at the first flag byte.
func ReadHeader(r io.ByteReader) (Header, error) {
	var hdr Header

	tag, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return hdr, ErrInputTooShort
		}

		return hdr, err
	}

	switch Variant(tag) {
	case LZSS10, LZSS11:
		hdr.Variant = Variant(tag)
	default:
		return hdr, fmt.Errorf("%w: 0x%02x", ErrInvalidHeader, tag)
	}

	size, err := readUintLE(r, 3)
	if err != nil {
		return hdr, err
	}

	// Extended form: 24-bit field of zero means the length did not fit and
	// the next 4 bytes carry it instead.
	if size == 0 {
		size, err = readUintLE(r, 4)
		if err != nil {
			return hdr, err
		}
	}

	hdr.DecodedLen = int(size)

	return hdr, nil
}

// readUintLE reads n bytes as a little-endian unsigned integer.
func readUintLE(r io.ByteReader, n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrInputTooShort
			}

			return 0, err
		}

		v |= uint32(b) << (8 * i)
	}

	return v, nil
}
