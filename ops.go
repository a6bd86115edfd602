package bstr

import (
	"bytes"
	"strings"

	"github.com/arloliu/bstr/header"
)

// Append appends the binary-safe data to the buffer, growing it as needed.
// The returned handle replaces the old one.
func (s String) Append(data []byte) (String, error) {
	curlen := s.Len()

	s, err := s.Grow(len(data))
	if err != nil {
		return String{}, err
	}

	off := s.hdr()
	copy(s.b[off+curlen:], data)
	header.WriteLength(s.b, s.c, curlen+len(data))
	s.b[off+curlen+len(data)] = 0

	return s, nil
}

// AppendString appends the Go string t to the buffer.
func (s String) AppendString(t string) (String, error) {
	curlen := s.Len()

	s, err := s.Grow(len(t))
	if err != nil {
		return String{}, err
	}

	off := s.hdr()
	copy(s.b[off+curlen:], t)
	header.WriteLength(s.b, s.c, curlen+len(t))
	s.b[off+curlen+len(t)] = 0

	return s, nil
}

// AppendBuffer appends the content of another buffer.
func (s String) AppendBuffer(t String) (String, error) {
	return s.Append(t.Bytes())
}

// Set destructively overwrites the buffer with the given content, growing
// first when data does not fit the current capacity. The returned handle
// replaces the old one.
func (s String) Set(data []byte) (String, error) {
	if s.Cap() < len(data) {
		var err error
		s, err = s.Grow(len(data) - s.Len())
		if err != nil {
			return String{}, err
		}
	}

	off := s.hdr()
	copy(s.b[off:], data)
	s.b[off+len(data)] = 0
	header.WriteLength(s.b, s.c, len(data))

	return s, nil
}

// SetString destructively overwrites the buffer with the Go string t.
func (s String) SetString(t string) (String, error) {
	return s.Set([]byte(t))
}

// Trim removes from both ends any run of bytes present in cutset. Trimming
// only shrinks, so it is always in place and cannot fail; the handle is
// returned for call chaining.
//
//	s, _ := bstr.New("AA...AA.a.aa.aHelloWorld     :::")
//	s = s.Trim("Aa. :") // "HelloWorld"
func (s String) Trim(cutset string) String {
	p := s.Bytes()
	end := len(p) - 1

	sp, ep := 0, end
	for sp <= end && strings.IndexByte(cutset, p[sp]) >= 0 {
		sp++
	}
	for ep > sp && strings.IndexByte(cutset, p[ep]) >= 0 {
		ep--
	}

	newlen := 0
	if sp <= ep {
		newlen = ep - sp + 1
	}

	off := s.hdr()
	if sp > 0 {
		copy(s.b[off:], p[sp:sp+newlen])
	}
	s.b[off+newlen] = 0
	header.WriteLength(s.b, s.c, newlen)

	return s
}

// Range shrinks the buffer in place to the inclusive substring [start, end].
// Negative indexes count from the end of the string, -1 being the last byte.
// Out-of-range indexes are clamped; if start ends up past end the result is
// empty.
//
//	s, _ := bstr.New("Hello World")
//	s = s.Range(1, -1) // "ello World"
func (s String) Range(start, end int) String {
	length := s.Len()
	if length == 0 {
		return s
	}

	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end = length + end
		if end < 0 {
			end = 0
		}
	}

	newlen := 0
	if start <= end {
		newlen = end - start + 1
	}
	if newlen != 0 {
		if start >= length {
			newlen = 0
		} else if end >= length {
			end = length - 1
			newlen = 0
			if start <= end {
				newlen = end - start + 1
			}
		}
	} else {
		start = 0
	}

	off := s.hdr()
	if start != 0 && newlen != 0 {
		copy(s.b[off:], s.b[off+start:off+start+newlen])
	}
	s.b[off+newlen] = 0
	header.WriteLength(s.b, s.c, newlen)

	return s
}

// ToLower lowercases every ASCII letter of the buffer in place. Bytes outside
// 'A'..'Z' are untouched; the operation is byte-oriented, not locale aware.
func (s String) ToLower() {
	p := s.Bytes()
	for i, b := range p {
		if b >= 'A' && b <= 'Z' {
			p[i] = b + ('a' - 'A')
		}
	}
}

// ToUpper uppercases every ASCII letter of the buffer in place.
func (s String) ToUpper() {
	p := s.Bytes()
	for i, b := range p {
		if b >= 'a' && b <= 'z' {
			p[i] = b - ('a' - 'A')
		}
	}
}

// Compare compares two buffers byte-wise, returning a negative, zero, or
// positive result. When one buffer is a prefix of the other, the longer one
// is considered greater.
func (s String) Compare(t String) int {
	p1, p2 := s.Bytes(), t.Bytes()

	minlen := len(p1)
	if len(p2) < minlen {
		minlen = len(p2)
	}

	if cmp := bytes.Compare(p1[:minlen], p2[:minlen]); cmp != 0 {
		return cmp
	}

	switch {
	case len(p1) > len(p2):
		return 1
	case len(p1) < len(p2):
		return -1
	}

	return 0
}

// MapChars substitutes, in place, every occurrence of a byte found in from
// with the byte at the same index in to. Extra bytes in the longer of the two
// sets are ignored.
//
//	s, _ := bstr.New("hello")
//	s = s.MapChars([]byte("ho"), []byte("01")) // "0ell1"
func (s String) MapChars(from, to []byte) String {
	setlen := len(from)
	if len(to) < setlen {
		setlen = len(to)
	}

	p := s.Bytes()
	for j, b := range p {
		for i := 0; i < setlen; i++ {
			if b == from[i] {
				p[j] = to[i]
				break
			}
		}
	}

	return s
}

// Join concatenates the given Go strings into a new buffer, interposing sep
// between elements but not after the last one.
func Join(elems []string, sep string) (String, error) {
	s, err := Empty()
	if err != nil {
		return String{}, err
	}

	for i, elem := range elems {
		s, err = s.AppendString(elem)
		if err != nil {
			return String{}, err
		}
		if i != len(elems)-1 {
			s, err = s.AppendString(sep)
			if err != nil {
				return String{}, err
			}
		}
	}

	return s, nil
}

// JoinBuffers concatenates the given buffers into a new buffer, interposing
// the binary-safe separator between elements but not after the last one.
func JoinBuffers(elems []String, sep []byte) (String, error) {
	s, err := Empty()
	if err != nil {
		return String{}, err
	}

	for i, elem := range elems {
		s, err = s.AppendBuffer(elem)
		if err != nil {
			return String{}, err
		}
		if i != len(elems)-1 {
			s, err = s.Append(sep)
			if err != nil {
				return String{}, err
			}
		}
	}

	return s, nil
}
