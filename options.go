package nlzss

// Options configures Decompress behavior.
type Options struct {
	// MaxDecodedSize caps the decoded length declared by the header.
	// A corrupt extended header can otherwise demand a multi-gigabyte
	// allocation before a single byte is decoded. 0 means no limit.
	MaxDecodedSize int
}

// DefaultOptions returns options for default behavior: no size limit.
func DefaultOptions() *Options {
	return &Options{}
}
