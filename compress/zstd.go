package compress

// ZstdCompressor implements Zstandard compression, the choice for cold
// blocks where ratio matters more than speed.
//
// Two implementations exist behind the same type: the default pure-Go
// one (klauspost/compress/zstd) and a cgo one bound to libzstd
// (valyala/gozstd), selected with the "gozstd" build tag. Both produce
// standard Zstd frames and decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
