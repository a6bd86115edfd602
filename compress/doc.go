// Package compress provides codecs for shelving bstr buffer payloads in
// compressed form.
//
// Long-lived buffers that are rarely touched (cached command lines, large
// joined documents, cold entries in an in-memory table) can be packed down to
// a fraction of their size and unpacked on demand. Both directions go through
// the tracked allocator, so alloc.Used reflects the shelved footprint.
//
// # Codecs
//
//   - S2: balanced speed and ratio, the recommended default
//   - Zstd: best ratio, moderate speed
//   - LZ4: fastest decompression
//   - NoOp: passthrough, for baselines and disabled configurations
//
// The Zstd codec uses the pure-Go klauspost implementation by default; build
// with the cgo_zstd tag to switch to the cgo gozstd bindings for higher
// throughput.
//
// # Usage
//
//	packed, err := compress.Pack(s, compress.NewS2Codec())
//	if err != nil {
//	    return err
//	}
//	s.Release() // the original can go; packed is independent
//	...
//	restored, err := compress.Unpack(packed, compress.NewS2Codec())
package compress
