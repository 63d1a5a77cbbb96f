package compress

// NoOpCompressor passes data through unchanged. It backs
// format.CompressionNone and is handy as a baseline in benchmarks.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result aliases the input; no
// copy is made.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged. The result aliases the input; no
// copy is made.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
