package compress

import (
	"fmt"

	"github.com/arloliu/bstr"
)

// Codec compresses and decompresses byte payloads.
//
// Implementations must not modify the input slice and must return freshly
// allocated output owned by the caller. Internal scratch buffers may be
// pooled. All codecs in this package are safe for concurrent use.
type Codec interface {
	// Compress compresses data and returns the compressed result. A nil
	// result for empty input is allowed.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. It returns an error if the input is
	// corrupted or was produced by an incompatible codec.
	Decompress(data []byte) ([]byte, error)
}

// Type identifies a codec in configuration.
type Type uint8

const (
	TypeNone Type = iota
	TypeS2
	TypeZstd
	TypeLZ4
)

// ForType returns the codec for the given type.
func ForType(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCodec(), nil
	case TypeS2:
		return NewS2Codec(), nil
	case TypeZstd:
		return NewZstdCodec(), nil
	case TypeLZ4:
		return NewLZ4Codec(), nil
	}

	return nil, fmt.Errorf("unknown compression type %d", t)
}

// Pack compresses the payload of s into a new tracked buffer. The input
// buffer is untouched; the caller decides when to release it.
func Pack(s bstr.String, codec Codec) (bstr.String, error) {
	packed, err := codec.Compress(s.Bytes())
	if err != nil {
		return bstr.String{}, fmt.Errorf("compressing payload: %w", err)
	}

	return bstr.NewLen(packed, len(packed))
}

// Unpack decompresses the payload of a buffer produced by Pack into a new
// tracked buffer.
func Unpack(s bstr.String, codec Codec) (bstr.String, error) {
	plain, err := codec.Decompress(s.Bytes())
	if err != nil {
		return bstr.String{}, fmt.Errorf("decompressing payload: %w", err)
	}

	return bstr.NewLen(plain, len(plain))
}
