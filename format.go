package bstr

import "fmt"

// maxIntDigits is enough room for the base-10 digits of any 64-bit integer
// plus a sign.
const maxIntDigits = 21

// formatInt writes the base-10 representation of value into dst and returns
// the number of bytes written. Digits are emitted least-significant first and
// then reversed, which avoids any division-by-length precomputation.
func formatInt(dst []byte, value int64) int {
	u := uint64(value)
	if value < 0 {
		u = -u
	}

	n := 0
	for {
		dst[n] = '0' + byte(u%10)
		n++
		u /= 10
		if u == 0 {
			break
		}
	}
	if value < 0 {
		dst[n] = '-'
		n++
	}

	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return n
}

// formatUint is the unsigned counterpart of formatInt.
func formatUint(dst []byte, value uint64) int {
	n := 0
	for {
		dst[n] = '0' + byte(value%10)
		n++
		value /= 10
		if value == 0 {
			break
		}
	}

	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return n
}

// AppendFormat appends text formatted with the full fmt verb set. The
// platform formatter produces the complete text directly, so no truncation
// detection is needed; the result is appended in one growth step.
//
//	s, _ := bstr.New("Sum is: ")
//	s, _ = s.AppendFormat("%d + %d = %d", a, b, a+b)
func (s String) AppendFormat(format string, args ...any) (String, error) {
	return s.AppendString(fmt.Sprintf(format, args...))
}

// AppendFmt appends text formatted with a minimal directive set, handled in a
// single pass without a format-string parser. It is significantly faster than
// AppendFormat on hot paths.
//
// Supported directives:
//
//	%s - Go string or []byte
//	%S - bstr.String
//	%i - signed integer (any signed Go integer type)
//	%I - 64-bit signed integer
//	%u - unsigned integer (any unsigned Go integer type)
//	%U - 64-bit unsigned integer
//	%% - verbatim '%'
//
// Any other directive character is emitted verbatim. An argument whose type
// does not match its directive, or a directive without an argument, is
// rendered as a fmt-style %!-marker instead of being dropped.
func (s String) AppendFmt(format string, args ...any) (String, error) {
	var err error
	arg := 0

	for f := 0; f < len(format); f++ {
		// Make sure there is always room for at least one byte.
		if s.Avail() == 0 {
			s, err = s.Grow(1)
			if err != nil {
				return String{}, err
			}
		}

		if format[f] != '%' || f+1 == len(format) {
			s, err = s.appendFmtByte(format[f])
			if err != nil {
				return String{}, err
			}
			continue
		}

		f++
		next := format[f]
		switch next {
		case 's', 'S':
			s, err = s.appendFmtString(next, nextArg(args, &arg))
		case 'i', 'I':
			s, err = s.appendFmtInt(next, nextArg(args, &arg))
		case 'u', 'U':
			s, err = s.appendFmtUint(next, nextArg(args, &arg))
		default:
			// Handles %% and generally %<unknown>.
			s, err = s.appendFmtByte(next)
		}
		if err != nil {
			return String{}, err
		}
	}

	return s, nil
}

// missingArg marks an exhausted argument list.
type missingArg struct{}

func nextArg(args []any, idx *int) any {
	if *idx >= len(args) {
		return missingArg{}
	}

	a := args[*idx]
	*idx++

	return a
}

func (s String) appendFmtByte(b byte) (String, error) {
	if s.Avail() == 0 {
		var err error
		s, err = s.Grow(1)
		if err != nil {
			return String{}, err
		}
	}

	length := s.Len()
	s.b[s.hdr()+length] = b
	s.IncrLen(1)

	return s, nil
}

func (s String) appendFmtBytes(data []byte) (String, error) {
	if s.Avail() < len(data) {
		var err error
		s, err = s.Grow(len(data))
		if err != nil {
			return String{}, err
		}
	}

	length := s.Len()
	copy(s.b[s.hdr()+length:], data)
	s.IncrLen(len(data))

	return s, nil
}

func (s String) appendFmtString(verb byte, arg any) (String, error) {
	switch v := arg.(type) {
	case string:
		return s.appendFmtBytes([]byte(v))
	case []byte:
		return s.appendFmtBytes(v)
	case String:
		if verb == 'S' {
			return s.appendFmtBytes(v.Bytes())
		}
	}

	return s.appendFmtBad(verb, arg)
}

func (s String) appendFmtInt(verb byte, arg any) (String, error) {
	var num int64
	switch v := arg.(type) {
	case int:
		num = int64(v)
	case int8:
		num = int64(v)
	case int16:
		num = int64(v)
	case int32:
		num = int64(v)
	case int64:
		num = v
	default:
		return s.appendFmtBad(verb, arg)
	}

	var buf [maxIntDigits]byte
	n := formatInt(buf[:], num)

	return s.appendFmtBytes(buf[:n])
}

func (s String) appendFmtUint(verb byte, arg any) (String, error) {
	var num uint64
	switch v := arg.(type) {
	case uint:
		num = uint64(v)
	case uint8:
		num = uint64(v)
	case uint16:
		num = uint64(v)
	case uint32:
		num = uint64(v)
	case uint64:
		num = v
	case uintptr:
		num = uint64(v)
	default:
		return s.appendFmtBad(verb, arg)
	}

	var buf [maxIntDigits]byte
	n := formatUint(buf[:], num)

	return s.appendFmtBytes(buf[:n])
}

func (s String) appendFmtBad(verb byte, arg any) (String, error) {
	if _, ok := arg.(missingArg); ok {
		return s.appendFmtBytes([]byte("%!" + string(verb) + "(MISSING)"))
	}

	return s.appendFmtBytes(fmt.Appendf(nil, "%%!%c(%T=%v)", verb, arg, arg))
}
