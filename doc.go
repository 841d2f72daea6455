/*
Package nlzss decompresses the Nintendo LZSS variants ("type 0x10" and
"type 0x11") used for GBA and NDS ROM assets. The package is decode-only.

Block layout: a 4-byte header (tag byte 0x10 or 0x11, then the decoded
length as 24-bit little-endian; a zero 24-bit field means the length
follows as 32-bit little-endian), then groups of one flag byte and up to
8 tokens. Flag bits are consumed MSB first; bit 0 = literal (1 byte),
bit 1 = back-reference into the bytes already decoded.

LZSS10 back-references are 2 bytes: 4-bit length (3..18) and 12-bit
distance (1..4096). LZSS11 back-references are 2, 3 or 4 bytes wide,
picked by the high nibble of the first byte, extending the length range
up to 0x10110 while distance stays 12-bit.

Decoding stops exactly when the declared length is produced, even in the
middle of a flag byte; trailing input is left untouched.

Use Decompress(src, opts) with nil for default options.
Use DecompressBlock(src, opts) to also get the number of consumed bytes.
Use DecompressFromReader(r, opts) to decode one block from a stream without
reading to EOF.
Use ReadHeader(r) to peek a block's variant and decoded length.
Set Options.MaxDecodedSize to reject headers declaring oversized output.

# Examples

Decompress a block with default options:

	out, err := nlzss.Decompress(encoded, nil)
	if err != nil {
		return err
	}

Walk blocks packed back to back in a buffer:

	for len(buf) > 0 {
		out, n, err := nlzss.DecompressBlock(buf, nil)
		if err != nil {
			return err
		}
		use(out)
		buf = buf[n:]
	}

Decode from a stream with an allocation cap:

	opts := &nlzss.Options{MaxDecodedSize: 1 << 20}
	out, consumed, err := nlzss.DecompressFromReader(r, opts)
	if err != nil {
		return err
	}
	_ = consumed
*/
package nlzss
