package nlzss

// Variant identifies the compression variant named by the header tag byte.
type Variant byte

// Header tag values.
const (
	LZSS10 Variant = 0x10 // Fixed 2-byte tokens, match length 3..18.
	LZSS11 Variant = 0x11 // Variable 2/3/4-byte tokens, match length 3..0x10110.
)

// String returns the conventional name of the variant.
func (v Variant) String() string {
	switch v {
	case LZSS10:
		return "LZSS10"
	case LZSS11:
		return "LZSS11"
	}

	return "unknown"
}

// Wire format constants.
const (
	HeaderSize    = 4      // Tag byte plus 24-bit LE decoded length.
	ExtHeaderSize = 8      // Header using the 32-bit extended length form.
	FlagBits      = 8      // Bits per flag byte, consumed MSB first.
	WindowSize    = 0x1000 // Maximum back-reference distance (12-bit field plus 1).
)

// Token length biases. Stored length fields are offset so that the smallest
// useful match in each tier encodes as zero.
const (
	minMatch10 = 3     // LZSS10: 4-bit length field 0..15 -> 3..18.
	minMatch11 = 1     // LZSS11 2-byte tier: high nibble 2..15 -> 3..16.
	lenBias3   = 0x11  // LZSS11 3-byte tier: 8-bit field -> 17..272.
	lenBias4   = 0x111 // LZSS11 4-byte tier: 16-bit field -> 273..65808.
)
