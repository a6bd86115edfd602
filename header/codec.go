package header

import "encoding/binary"

// Field layout within the block: the length field starts at offset 0, the
// capacity field follows it, and the flags byte is the last header byte,
// immediately before the payload. Tiny has only the flags byte.

// Write initializes the complete header for the given class in block,
// recording length and capacity and tagging the flags byte.
//
// Panics if length or capacity exceed what the class can represent, or if
// length exceeds capacity.
func Write(block []byte, c Class, length, capacity int) {
	if length > capacity {
		panic("header: length exceeds capacity")
	}
	if capacity > c.MaxLen() {
		panic("header: capacity exceeds class range")
	}

	switch c {
	case ClassTiny:
		// Tiny has no capacity field; length == capacity by construction.
		if length != capacity {
			panic("header: tiny class requires length == capacity")
		}
		block[0] = uint8(c) | uint8(length)<<ClassBits
	case ClassSmall:
		block[0] = uint8(length)
		block[1] = uint8(capacity)
		block[2] = uint8(c)
	case ClassMedium:
		binary.LittleEndian.PutUint16(block[0:2], uint16(length))
		binary.LittleEndian.PutUint16(block[2:4], uint16(capacity))
		block[4] = uint8(c)
	case ClassLarge:
		binary.LittleEndian.PutUint32(block[0:4], uint32(length))
		binary.LittleEndian.PutUint32(block[4:8], uint32(capacity))
		block[8] = uint8(c)
	case ClassHuge:
		binary.LittleEndian.PutUint64(block[0:8], uint64(length))
		binary.LittleEndian.PutUint64(block[8:16], uint64(capacity))
		block[16] = uint8(c)
	}
}

// ReadLength returns the logical length recorded in the header.
func ReadLength(block []byte, c Class) int {
	switch c {
	case ClassTiny:
		return int(block[0] >> ClassBits)
	case ClassSmall:
		return int(block[0])
	case ClassMedium:
		return int(binary.LittleEndian.Uint16(block[0:2]))
	case ClassLarge:
		return int(binary.LittleEndian.Uint32(block[0:4]))
	case ClassHuge:
		return int(binary.LittleEndian.Uint64(block[0:8]))
	}

	return 0
}

// WriteLength records a new logical length. For the Tiny class the length is
// re-packed into the flags byte.
//
// Panics if n exceeds the class range.
func WriteLength(block []byte, c Class, n int) {
	if n > c.MaxLen() {
		panic("header: length exceeds class range")
	}

	switch c {
	case ClassTiny:
		block[0] = uint8(ClassTiny) | uint8(n)<<ClassBits
	case ClassSmall:
		block[0] = uint8(n)
	case ClassMedium:
		binary.LittleEndian.PutUint16(block[0:2], uint16(n))
	case ClassLarge:
		binary.LittleEndian.PutUint32(block[0:4], uint32(n))
	case ClassHuge:
		binary.LittleEndian.PutUint64(block[0:8], uint64(n))
	}
}

// ReadCapacity returns the capacity recorded in the header. For the Tiny
// class this is the packed length, since Tiny tracks no spare space.
func ReadCapacity(block []byte, c Class) int {
	switch c {
	case ClassTiny:
		return int(block[0] >> ClassBits)
	case ClassSmall:
		return int(block[1])
	case ClassMedium:
		return int(binary.LittleEndian.Uint16(block[2:4]))
	case ClassLarge:
		return int(binary.LittleEndian.Uint32(block[4:8]))
	case ClassHuge:
		return int(binary.LittleEndian.Uint64(block[8:16]))
	}

	return 0
}

// WriteCapacity records a new capacity. For the Tiny class this is a no-op:
// Tiny has no capacity field.
//
// Panics if n exceeds the class range.
func WriteCapacity(block []byte, c Class, n int) {
	if n > c.MaxLen() {
		panic("header: capacity exceeds class range")
	}

	switch c {
	case ClassTiny:
		// No allocation field to update.
	case ClassSmall:
		block[1] = uint8(n)
	case ClassMedium:
		binary.LittleEndian.PutUint16(block[2:4], uint16(n))
	case ClassLarge:
		binary.LittleEndian.PutUint32(block[4:8], uint32(n))
	case ClassHuge:
		binary.LittleEndian.PutUint64(block[8:16], uint64(n))
	}
}

// TagOf recovers the class from a flags byte.
func TagOf(flags byte) Class {
	return Class(flags & ClassMask)
}
