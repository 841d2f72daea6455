package nlzss

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses one Nintendo LZSS block held in src.
// The header declares the variant and decoded length; decoding stops the
// moment that length is reached, so bytes after the encoded stream are
// ignored. Options nil means DefaultOptions (no size limit).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, opts)

	return out, err
}

// DecompressBlock decompresses one LZSS block from the beginning of src.
// It returns decompressed bytes and the number of consumed input bytes, so
// callers walking a packed archive can continue at the next block.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	if len(src) < HeaderSize {
		return nil, 0, ErrInputTooShort
	}

	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one LZSS block from r and returns consumed bytes.
// Decoding stops exactly once the header's decoded length is produced; r is
// left positioned at the first unread byte.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(countingReader, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// byteFn reads one byte, mapping io.EOF to the given error.
type byteFn func(eofErr error) (byte, error)

// decompressFromByteReader parses the header and runs the decode loop.
func decompressFromByteReader(r io.ByteReader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxDecodedSize > 0 && hdr.DecodedLen > opts.MaxDecodedSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeLimit, hdr.DecodedLen, opts.MaxDecodedSize)
	}

	// Read a byte from the reader.
	// If the reader returns an EOF error, return the error passed as eofErr.
	// Otherwise, return the error from the reader.
	next := byteFn(func(eofErr error) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, eofErr
			}

			return 0, err
		}

		return b, nil
	})

	target := hdr.DecodedLen
	out := make([]byte, 0, target)

	for len(out) < target {
		flags, err := next(ErrUnexpectedEOF)
		if err != nil {
			return nil, err
		}

		// One flag byte governs the next 8 tokens, MSB first. Unused
		// trailing bits are discarded once the target length is reached.
		for bit := 0; bit < FlagBits && len(out) < target; bit, flags = bit+1, flags<<1 {
			// Bit 0 is a literal: one input byte copied through.
			if flags&0x80 == 0 {
				b, err := next(ErrUnexpectedEOFToken)
				if err != nil {
					return nil, err
				}

				out = append(out, b)

				continue
			}

			var count, disp int
			switch hdr.Variant {
			case LZSS10:
				count, disp, err = readToken10(next)
			default:
				count, disp, err = readToken11(next)
			}
			if err != nil {
				return nil, err
			}

			if disp > len(out) {
				return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrInvalidBackRef, disp, len(out))
			}

			if len(out)+count > target {
				count = target - len(out)
			}

			// Overlapping back-ref (disp < count): copy byte-by-byte so each
			// written byte is visible to the next read (RLE-like).
			if disp >= count {
				start := len(out) - disp
				out = append(out, out[start:start+count]...)
			} else {
				for i := 0; i < count; i++ {
					out = append(out, out[len(out)-disp])
				}
			}
		}
	}

	return out, nil
}

// readToken10 decodes a fixed 2-byte LZSS10 back-reference: 4-bit length
// (biased by 3) then 12-bit distance (biased by 1), big-endian.
func readToken10(next byteFn) (count, disp int, err error) {
	hi, err := next(ErrUnexpectedEOFToken)
	if err != nil {
		return 0, 0, err
	}
	lo, err := next(ErrUnexpectedEOFToken)
	if err != nil {
		return 0, 0, err
	}

	v := uint16(hi)<<8 | uint16(lo)
	count = int(v>>12) + minMatch10
	disp = int(v&0x0FFF) + 1

	return count, disp, nil
}

// readToken11 decodes a variable-width LZSS11 back-reference. The high
// nibble of the first byte picks the tier: >=2 is a 2-byte token carrying
// the length itself, 0 is a 3-byte token with an 8-bit extended length,
// 1 is a 4-byte token with a 16-bit extended length. Every tier ends with
// a 12-bit distance biased by 1.
func readToken11(next byteFn) (count, disp int, err error) {
	b0, err := next(ErrUnexpectedEOFToken)
	if err != nil {
		return 0, 0, err
	}

	var hiNibble byte // high 4 bits of the 12-bit distance
	switch b0 >> 4 {
	case 0: // 3-byte token
		b1, err := next(ErrUnexpectedEOFToken)
		if err != nil {
			return 0, 0, err
		}

		count = int(b0&0x0F)<<4 | int(b1>>4)
		count += lenBias3
		hiNibble = b1 & 0x0F

	case 1: // 4-byte token
		b1, err := next(ErrUnexpectedEOFToken)
		if err != nil {
			return 0, 0, err
		}
		b2, err := next(ErrUnexpectedEOFToken)
		if err != nil {
			return 0, 0, err
		}

		count = int(b0&0x0F)<<12 | int(b1)<<4 | int(b2>>4)
		count += lenBias4
		hiNibble = b2 & 0x0F

	default: // 2-byte token, length held in the nibble itself
		count = int(b0>>4) + minMatch11
		hiNibble = b0 & 0x0F
	}

	lo, err := next(ErrUnexpectedEOFToken)
	if err != nil {
		return 0, 0, err
	}

	disp = int(hiNibble)<<8 | int(lo)
	disp++

	return count, disp, nil
}
