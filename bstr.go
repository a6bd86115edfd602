// Package bstr provides a binary-safe, growable byte-buffer string with
// width-adaptive header accounting.
//
// A bstr.String stores its bookkeeping (logical length, allocated capacity,
// encoding class tag) in a header that lives in the same allocation as the
// payload. The header's physical width adapts to the buffer's size: a string
// a few bytes long pays a single header byte, while a multi-gigabyte buffer
// gets full 64-bit accounting. Every buffer is also followed by one zero byte
// that is not counted in the length, so the payload can be handed to
// terminator-expecting APIs while remaining binary safe (embedded zero bytes
// do not truncate any length-aware operation).
//
// # Ownership
//
// Mutating operations follow a move-on-mutate discipline: they may relocate
// the buffer, so they return the new String and the old handle must not be
// used again.
//
//	s, _ := bstr.New("foo")
//	s, err := s.AppendString("bar") // always use the returned handle
//	if err != nil {
//	    ...
//	}
//	defer s.Release()
//
// A String is not safe for concurrent mutation. Concurrent read-only access
// to a buffer no goroutine is mutating is safe.
//
// # Allocation
//
// All memory flows through the tracked allocator in the alloc package, so
// the library's footprint shows up in alloc.Used(). Operations that need
// memory report errs.ErrAllocationFailure when the allocator's budget is
// exhausted and its OOM policy elects not to abort; with the default fatal
// policy those errors never surface.
package bstr

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/bstr/alloc"
	"github.com/arloliu/bstr/header"
)

// String is a handle to a single allocated block holding the header, the
// payload, and the trailing zero byte. It is a small value; copying the
// handle does not copy the buffer.
//
// The zero value is not a valid buffer; obtain one from New, NewLen, or
// Empty.
type String struct {
	c header.Class
	b []byte
}

// hdr returns the offset of the first payload byte within the block.
func (s String) hdr() int {
	return s.c.Size()
}

// NewLen creates a buffer of the given length. Up to length bytes are copied
// from init; if init is nil or shorter than length, the remainder is
// zero-filled. The content may contain zero bytes, the buffer is binary safe.
func NewLen(init []byte, length int) (String, error) {
	if length < 0 {
		panic("bstr: negative length")
	}

	c := header.ClassFor(length)
	// Empty buffers are usually created in order to append. Tiny cannot track
	// spare capacity, so upgrade to Small.
	if c == header.ClassTiny && length == 0 {
		c = header.ClassSmall
	}

	hdrlen := c.Size()
	block, err := alloc.Default().Alloc(hdrlen + length + 1)
	if err != nil {
		return String{}, err
	}

	header.Write(block, c, length, length)
	if len(init) > length {
		init = init[:length]
	}
	copy(block[hdrlen:], init)
	// block[hdrlen+length] is already zero: Alloc returns zeroed memory.

	return String{c: c, b: block}, nil
}

// New creates a buffer holding a copy of the Go string s.
func New(s string) (String, error) {
	return NewLen([]byte(s), len(s))
}

// Empty creates a zero-length buffer suitable for appending.
func Empty() (String, error) {
	return NewLen(nil, 0)
}

// Dup returns an independent copy of the buffer, sized exactly to its
// length.
func (s String) Dup() (String, error) {
	return NewLen(s.Bytes(), s.Len())
}

// FromInt creates a buffer holding the base-10 representation of value. It is
// much faster than formatting through AppendFormat.
func FromInt(value int64) (String, error) {
	var buf [maxIntDigits]byte
	n := formatInt(buf[:], value)

	return NewLen(buf[:n], n)
}

// Release returns the buffer's block to the tracked allocator. The handle,
// and any view obtained from Bytes or Terminated, must not be used
// afterwards. Releasing a zero-value String is a no-op.
func (s String) Release() {
	alloc.Default().Free(s.b)
}

// Len returns the logical content length in bytes.
func (s String) Len() int {
	return header.ReadLength(s.b, s.c)
}

// Cap returns the bytes available for content, excluding the header and the
// trailing terminator.
func (s String) Cap() int {
	return header.ReadCapacity(s.b, s.c)
}

// Avail returns the spare capacity, Cap minus Len. Always zero for the Tiny
// class.
func (s String) Avail() int {
	return s.Cap() - s.Len()
}

// Class returns the buffer's current encoding class.
func (s String) Class() header.Class {
	return s.c
}

// AllocSize returns the total size of the buffer's allocation: header,
// capacity, and the trailing terminator.
func (s String) AllocSize() int {
	return len(s.b)
}

// Bytes returns the payload as a view into the buffer, without copying. The
// view contains exactly Len bytes and is invalidated by any mutating
// operation and by Release.
func (s String) Bytes() []byte {
	off := s.hdr()

	return s.b[off : off+s.Len()]
}

// Terminated returns the payload plus the trailing zero byte, for interop
// with APIs expecting a conventional terminated string. Only meaningful when
// the content itself contains no zero byte. The view is invalidated like
// Bytes.
func (s String) Terminated() []byte {
	off := s.hdr()

	return s.b[off : off+s.Len()+1]
}

// String returns a copy of the payload as a Go string. It implements
// fmt.Stringer.
func (s String) String() string {
	return string(s.Bytes())
}

// Hash64 returns the xxHash64 of the payload, convenient when buffers key a
// map or need cheap content identity.
func (s String) Hash64() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// SetLen adjusts the logical length and rewrites the trailing terminator.
// The content between the old and new length is left as is.
//
// Panics if n is negative or exceeds the capacity; violating the
// length/capacity relationship is a programming error, not a recoverable
// failure.
func (s String) SetLen(n int) {
	if n < 0 || n > s.Cap() {
		panic("bstr: SetLen out of range")
	}

	header.WriteLength(s.b, s.c, n)
	s.b[s.hdr()+n] = 0
}

// IncrLen adjusts the logical length by delta and rewrites the trailing
// terminator. A negative delta right-trims. It is the companion of Grow for
// zero-copy writes:
//
//	oldlen := s.Len()
//	s, _ = s.Grow(bufSize)
//	n, _ := r.Read(s.Raw()[oldlen : oldlen+bufSize])
//	s.IncrLen(n)
//
// Panics if delta would make the length negative or exceed the capacity.
func (s String) IncrLen(delta int) {
	length := s.Len()
	if delta >= 0 {
		if s.Avail() < delta {
			panic("bstr: IncrLen exceeds capacity")
		}
	} else if length < -delta {
		panic("bstr: IncrLen below zero")
	}

	length += delta
	header.WriteLength(s.b, s.c, length)
	s.b[s.hdr()+length] = 0
}

// Raw returns the full payload window of Cap bytes regardless of the current
// length, for writing into spare capacity before calling IncrLen.
func (s String) Raw() []byte {
	off := s.hdr()

	return s.b[off : off+s.Cap()]
}

// Clear empties the buffer in place. For classes with a capacity field the
// capacity is retained, so subsequent appends up to the previous size need no
// allocation. Tiny has no such field: its reported capacity follows the
// length down to zero, even though the block itself is unchanged.
func (s String) Clear() {
	header.WriteLength(s.b, s.c, 0)
	s.b[s.hdr()] = 0
}

// UpdateLen resets the logical length to the offset of the first zero byte,
// considering as content only up to the first terminator. Useful after the
// payload has been modified through Raw by terminator-oriented code.
func (s String) UpdateLen() {
	off := s.hdr()
	window := s.b[off : off+s.Cap()+1]
	for i, b := range window {
		if b == 0 {
			s.SetLen(i)
			return
		}
	}
}
