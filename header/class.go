package header

import "math/bits"

// Class identifies one of the five header layouts. The class tag is stored in
// the low 3 bits of the flags byte.
type Class uint8

const (
	// ClassTiny packs the length into the flags byte itself. It tracks no
	// spare capacity, so the buffer engine never targets it when growing.
	ClassTiny Class = iota
	// ClassSmall stores length and capacity as uint8 fields.
	ClassSmall
	// ClassMedium stores length and capacity as uint16 fields.
	ClassMedium
	// ClassLarge stores length and capacity as uint32 fields.
	ClassLarge
	// ClassHuge stores length and capacity as uint64 fields. Only selected on
	// platforms with 64-bit ints.
	ClassHuge
)

const (
	// ClassMask extracts the class tag from the flags byte.
	ClassMask = 0x07
	// ClassBits is the number of flag bits occupied by the class tag; the
	// Tiny length occupies the remaining high bits.
	ClassBits = 3

	// TinyMaxLen is the largest length representable by the Tiny class.
	TinyMaxLen = 1<<5 - 1
)

// ClassFor returns the narrowest class whose length/capacity fields can
// represent the requested capacity.
func ClassFor(capacity int) Class {
	if capacity < 1<<5 {
		return ClassTiny
	}
	if capacity < 1<<8 {
		return ClassSmall
	}
	if capacity < 1<<16 {
		return ClassMedium
	}
	if bits.UintSize == 64 {
		if int64(capacity) < 1<<32 {
			return ClassLarge
		}

		return ClassHuge
	}

	return ClassLarge
}

// Size returns the header size in bytes for the class: the length and
// capacity fields plus the flags byte. The payload starts at this offset
// within the block.
func (c Class) Size() int {
	switch c {
	case ClassTiny:
		return 1
	case ClassSmall:
		return 1 + 1 + 1
	case ClassMedium:
		return 2 + 2 + 1
	case ClassLarge:
		return 4 + 4 + 1
	case ClassHuge:
		return 8 + 8 + 1
	}

	return 0
}

// MaxLen returns the largest length/capacity value the class can represent.
func (c Class) MaxLen() int {
	switch c {
	case ClassTiny:
		return TinyMaxLen
	case ClassSmall:
		return 1<<8 - 1
	case ClassMedium:
		return 1<<16 - 1
	case ClassLarge:
		if bits.UintSize == 64 {
			return int(int64(1)<<32 - 1)
		}

		return int(^uint(0) >> 1)
	case ClassHuge:
		return int(^uint(0) >> 1)
	}

	return 0
}

// String returns the class name for diagnostics.
func (c Class) String() string {
	switch c {
	case ClassTiny:
		return "tiny"
	case ClassSmall:
		return "small"
	case ClassMedium:
		return "medium"
	case ClassLarge:
		return "large"
	case ClassHuge:
		return "huge"
	}

	return "unknown"
}
