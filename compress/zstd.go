package compress

// ZstdCodec provides Zstandard compression for payloads where ratio matters
// more than speed: cold entries, archival shelving, large joined documents.
//
// The implementation is selected at build time: pure Go by default, the cgo
// gozstd bindings with the cgo_zstd build tag.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
