// Package header defines the width-adaptive header layout shared by all bstr
// buffers and the pure codec functions that read and write it.
//
// # Overview
//
// Every bstr buffer is a single allocation laid out as:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Length field (0/1/2/4/8 bytes, little-endian)           │
//	├─────────────────────────────────────────────────────────┤
//	│ Capacity field (0/1/2/4/8 bytes, little-endian)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Flags byte (class tag in the low 3 bits)                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (Capacity bytes, Length of them in use)         │
//	├─────────────────────────────────────────────────────────┤
//	│ Terminator (one 0x00 byte, not counted in Length)       │
//	└─────────────────────────────────────────────────────────┘
//
// The field width depends on the encoding class, which is the narrowest class
// whose field can represent the buffer's capacity. The Tiny class has no
// separate fields at all: its length is packed into the high 5 bits of the
// flags byte and its capacity always equals its length.
//
// The flags byte always sits immediately before the payload, so code holding
// the raw block can recover the class from the byte just before the first
// content byte.
//
// # Failure Modes
//
// None. This package is pure computation over sizes that the buffer engine
// has already validated; handing it a truncated block or an out-of-range
// value is a programming error and panics.
package header
