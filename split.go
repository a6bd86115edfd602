package bstr

import (
	"bytes"
	"fmt"

	"github.com/arloliu/bstr/errs"
)

// Split splits data by the byte-exact separator sep and returns the tokens as
// independent buffers. The separator may be multi-byte:
//
//	tokens, _ := bstr.Split([]byte("foo_-_bar"), []byte("_-_"))
//	// "foo", "bar"
//
// Zero-length input yields an empty token list. A zero-length separator is
// rejected with errs.ErrEmptySeparator. If allocation fails mid-scan, all
// tokens produced so far are released before the failure is reported.
func Split(data, sep []byte) ([]String, error) {
	if len(sep) < 1 {
		return nil, errs.ErrEmptySeparator
	}

	tokens := make([]String, 0, 5)
	if len(data) == 0 {
		return tokens, nil
	}

	start := 0
	for j := 0; j < len(data)-(len(sep)-1); j++ {
		if (len(sep) == 1 && data[j] == sep[0]) || bytes.Equal(data[j:j+len(sep)], sep) {
			tok, err := NewLen(data[start:j], j-start)
			if err != nil {
				ReleaseAll(tokens)
				return nil, err
			}
			tokens = append(tokens, tok)
			start = j + len(sep)
			j += len(sep) - 1 // skip the separator
		}
	}

	// The final element runs to the end of the input.
	tok, err := NewLen(data[start:], len(data)-start)
	if err != nil {
		ReleaseAll(tokens)
		return nil, err
	}
	tokens = append(tokens, tok)

	return tokens, nil
}

// ReleaseAll releases every buffer in tokens through the tracked allocator.
// Convenient for results of Split and SplitArgs.
func ReleaseAll(tokens []String) {
	for _, tok := range tokens {
		tok.Release()
	}
}

// isSpace reports whether b is an ASCII whitespace byte.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// isHexDigit reports whether b is a valid hexadecimal digit.
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// hexDigitToInt converts a hexadecimal digit into its value, 0 to 15.
func hexDigitToInt(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}

	return 0
}

// SplitArgs splits a command line into arguments, where every argument can be
// in a programming-language REPL-alike form:
//
//	foo bar "newlines are supported\n" and "\xff\x00otherstuff"
//
// Inside double quotes, \xHH inserts the decoded byte and \n \r \t \b \a
// insert the corresponding control characters; any other escaped byte is
// inserted literally. Inside single quotes only \' is recognized. A closing
// quote must be followed by whitespace or the end of the input.
//
// AppendRepr renders a buffer back into the same quoted form this function
// parses.
//
// On success the decoded tokens are returned; an all-whitespace or empty
// input yields an empty list. Unbalanced quotes or a closing quote followed
// by a non-space byte fail with errs.ErrUnbalancedQuotes or
// errs.ErrTrailingGarbage respectively, after releasing all partial state; no
// partial token list is ever returned.
func SplitArgs(line string) ([]String, error) {
	tokens := make([]String, 0, 4)
	p := 0

	fail := func(current *String, started bool, cause error) ([]String, error) {
		if started {
			current.Release()
		}
		ReleaseAll(tokens)

		return nil, cause
	}

	for {
		// Skip blanks between arguments.
		for p < len(line) && isSpace(line[p]) {
			p++
		}
		if p == len(line) {
			return tokens, nil
		}

		var (
			current String
			started bool
			err     error
		)

		inq := false  // inside "double quotes"
		insq := false // inside 'single quotes'
		done := false

		current, err = Empty()
		if err != nil {
			return fail(&current, false, err)
		}
		started = true

		for !done {
			atEnd := p == len(line)
			switch {
			case inq:
				switch {
				case atEnd:
					return fail(&current, started, errs.ErrUnbalancedQuotes)
				case line[p] == '\\' && p+3 < len(line) && line[p+1] == 'x' &&
					isHexDigit(line[p+2]) && isHexDigit(line[p+3]):
					decoded := hexDigitToInt(line[p+2])*16 + hexDigitToInt(line[p+3])
					current, err = current.Append([]byte{decoded})
					p += 3
				case line[p] == '\\' && p+1 < len(line):
					p++
					var c byte
					switch line[p] {
					case 'n':
						c = '\n'
					case 'r':
						c = '\r'
					case 't':
						c = '\t'
					case 'b':
						c = '\b'
					case 'a':
						c = '\a'
					default:
						c = line[p]
					}
					current, err = current.Append([]byte{c})
				case line[p] == '"':
					// The closing quote must be followed by a space or
					// nothing at all.
					if p+1 < len(line) && !isSpace(line[p+1]) {
						return fail(&current, started, errs.ErrTrailingGarbage)
					}
					done = true
				default:
					current, err = current.Append([]byte{line[p]})
				}
			case insq:
				switch {
				case atEnd:
					return fail(&current, started, errs.ErrUnbalancedQuotes)
				case line[p] == '\\' && p+1 < len(line) && line[p+1] == '\'':
					p++
					current, err = current.Append([]byte{'\''})
				case line[p] == '\'':
					if p+1 < len(line) && !isSpace(line[p+1]) {
						return fail(&current, started, errs.ErrTrailingGarbage)
					}
					done = true
				default:
					current, err = current.Append([]byte{line[p]})
				}
			default:
				if atEnd {
					done = true
					break
				}
				switch line[p] {
				case ' ', '\n', '\r', '\t':
					done = true
				case '"':
					inq = true
				case '\'':
					insq = true
				default:
					current, err = current.Append([]byte{line[p]})
				}
			}

			if err != nil {
				return fail(&current, started, fmt.Errorf("building argument: %w", err))
			}
			if p < len(line) {
				p++
			}
		}

		tokens = append(tokens, current)
	}
}
