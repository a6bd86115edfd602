package bstr

import (
	"github.com/arloliu/bstr/alloc"
	"github.com/arloliu/bstr/header"
)

// MaxPrealloc is the preallocation ceiling for the amortized growth policy.
// Below it, Grow doubles the required size; at or above it, Grow adds the
// ceiling as a flat increment, bounding the relative overhead of huge
// buffers.
const MaxPrealloc = 1024 * 1024 // 1MiB

// Grow enlarges the spare capacity so that at least addlen bytes can be
// written after the current content without further allocation. It does not
// change the logical length.
//
// If the new capacity crosses a class threshold the buffer migrates to the
// wider header layout; the payload and terminator are preserved either way.
// The returned handle replaces the old one.
func (s String) Grow(addlen int) (String, error) {
	if addlen < 0 {
		panic("bstr: negative grow size")
	}
	if s.Avail() >= addlen {
		return s, nil
	}

	length := s.Len()
	newcap := length + addlen
	if newcap < MaxPrealloc {
		newcap *= 2
	} else {
		newcap += MaxPrealloc
	}

	c := header.ClassFor(newcap)
	// Never grow into Tiny: the caller is appending, and Tiny cannot track
	// the spare space this call exists to create.
	if c == header.ClassTiny {
		c = header.ClassSmall
	}

	hdrlen := c.Size()
	if c == s.c {
		// Same header layout, resize the block in place.
		block, err := alloc.Default().Realloc(s.b, hdrlen+newcap+1)
		if err != nil {
			return String{}, err
		}
		s.b = block
	} else {
		// The header width changes, so the payload has to move; a plain
		// resize cannot shift it.
		block, err := alloc.Default().Alloc(hdrlen + newcap + 1)
		if err != nil {
			return String{}, err
		}
		copy(block[hdrlen:], s.b[s.hdr():s.hdr()+length+1])
		alloc.Default().Free(s.b)
		header.Write(block, c, length, newcap)

		return String{c: c, b: block}, nil
	}

	header.WriteCapacity(s.b, s.c, newcap)

	return s, nil
}

// ShrinkToFit reallocates the buffer so that it has no spare capacity. The
// content is unchanged, but the next append will require an allocation. When
// the smaller capacity fits a narrower header near the bottom of the range,
// the buffer also migrates down; for mid-range shrinks the current layout is
// kept and only the block is resized, which lets the allocator skip the copy
// when it can.
//
// The returned handle replaces the old one. Applying ShrinkToFit twice
// yields the same capacity as applying it once.
func (s String) ShrinkToFit() (String, error) {
	if s.Avail() == 0 {
		return s, nil
	}

	length := s.Len()
	c := header.ClassFor(length)

	if c == s.c || c > header.ClassSmall {
		block, err := alloc.Default().Realloc(s.b, s.hdr()+length+1)
		if err != nil {
			return String{}, err
		}
		s.b = block
	} else {
		hdrlen := c.Size()
		block, err := alloc.Default().Alloc(hdrlen + length + 1)
		if err != nil {
			return String{}, err
		}
		copy(block[hdrlen:], s.b[s.hdr():s.hdr()+length+1])
		alloc.Default().Free(s.b)
		header.Write(block, c, length, length)

		return String{c: c, b: block}, nil
	}

	header.WriteCapacity(s.b, s.c, length)

	return s, nil
}

// GrowZero extends the buffer to the specified length, zero-filling the added
// region. If length is not greater than the current length, the buffer is
// returned unchanged.
func (s String) GrowZero(length int) (String, error) {
	curlen := s.Len()
	if length <= curlen {
		return s, nil
	}

	s, err := s.Grow(length - curlen)
	if err != nil {
		return String{}, err
	}

	// Make sure the added region contains no stale bytes, including the
	// terminator slot.
	off := s.hdr()
	clear(s.b[off+curlen : off+length+1])
	header.WriteLength(s.b, s.c, length)

	return s, nil
}
