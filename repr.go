package bstr

const hexDigits = "0123456789abcdef"

// isPrint reports whether b is a printable ASCII byte.
func isPrint(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// AppendRepr appends an escaped, double-quoted representation of p to the
// buffer. Backslashes, double quotes and the common control characters
// become their two-character escapes, other non-printable bytes become
// \xHH, and printable bytes pass through unchanged.
//
// The produced form is exactly what SplitArgs parses, so for any byte
// sequence the representation round-trips back to the original bytes.
func (s String) AppendRepr(p []byte) (String, error) {
	s, err := s.Append([]byte{'"'})
	if err != nil {
		return String{}, err
	}

	for _, b := range p {
		switch b {
		case '\\', '"':
			s, err = s.Append([]byte{'\\', b})
		case '\n':
			s, err = s.AppendString(`\n`)
		case '\r':
			s, err = s.AppendString(`\r`)
		case '\t':
			s, err = s.AppendString(`\t`)
		case '\a':
			s, err = s.AppendString(`\a`)
		case '\b':
			s, err = s.AppendString(`\b`)
		default:
			if isPrint(b) {
				s, err = s.Append([]byte{b})
			} else {
				s, err = s.Append([]byte{'\\', 'x', hexDigits[b>>4], hexDigits[b&0x0f]})
			}
		}
		if err != nil {
			return String{}, err
		}
	}

	return s.Append([]byte{'"'})
}
