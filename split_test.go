package bstr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bstr/alloc"
	"github.com/arloliu/bstr/errs"
)

func tokenStrings(tokens []String) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}

	return out
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		data string
		sep  string
		want []string
	}{
		{"Single byte separator", "a,b,c", ",", []string{"a", "b", "c"}},
		{"Multi byte separator", "foo_-_bar", "_-_", []string{"foo", "bar"}},
		{"No separator present", "plain", ",", []string{"plain"}},
		{"Leading separator", ",a", ",", []string{"", "a"}},
		{"Trailing separator", "a,", ",", []string{"a", ""}},
		{"Adjacent separators", "a,,b", ",", []string{"a", "", "b"}},
		{"Separator equals input", "--", "--", []string{"", ""}},
		{"Partial separator at end", "a_-_b_-", "_-_", []string{"a", "b_-"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Split([]byte(tt.data), []byte(tt.sep))
			require.NoError(t, err)
			defer ReleaseAll(tokens)

			require.Equal(t, tt.want, tokenStrings(tokens))
		})
	}

	t.Run("Empty input yields empty list", func(t *testing.T) {
		tokens, err := Split(nil, []byte(","))
		require.NoError(t, err)
		require.NotNil(t, tokens)
		require.Empty(t, tokens)
	})

	t.Run("Empty separator rejected", func(t *testing.T) {
		_, err := Split([]byte("abc"), nil)
		require.ErrorIs(t, err, errs.ErrEmptySeparator)
	})

	t.Run("Binary separator", func(t *testing.T) {
		tokens, err := Split([]byte{'a', 0, 'b'}, []byte{0})
		require.NoError(t, err)
		defer ReleaseAll(tokens)

		require.Equal(t, []string{"a", "b"}, tokenStrings(tokens))
	})
}

func TestSplitArgs(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"Plain words", "foo bar", []string{"foo", "bar"}},
		{"Double-quoted token", `foo bar "a b"`, []string{"foo", "bar", "a b"}},
		{"Mixed quoting", `set key "hello world" 'single it'`, []string{"set", "key", "hello world", "single it"}},
		{"Control escapes", `"line1\nline2\ttab"`, []string{"line1\nline2\ttab"}},
		{"All control escapes", `"\a\b\n\r\t"`, []string{"\a\b\n\r\t"}},
		{"Hex escapes", `"\xff\x00ok"`, []string{"\xff\x00ok"}},
		{"Uppercase hex digits", `"\xAB"`, []string{"\xab"}},
		{"Invalid hex falls back to literal", `"\xzz"`, []string{"xzz"}},
		{"Escaped quote inside double quotes", `"say \"hi\""`, []string{`say "hi"`}},
		{"Escaped backslash", `"a\\b"`, []string{`a\b`}},
		{"Unknown escape is literal", `"\q"`, []string{"q"}},
		{"Single quotes are literal", `'no \n escapes'`, []string{`no \n escapes`}},
		{"Escaped single quote", `'it\'s'`, []string{"it's"}},
		{"Empty quoted token", `a "" b`, []string{"a", "", "b"}},
		{"Whitespace variety", "a\tb\nc\rd", []string{"a", "b", "c", "d"}},
		{"Quotes adjacent to word end", `do "x y" done`, []string{"do", "x y", "done"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := SplitArgs(tt.line)
			require.NoError(t, err)
			defer ReleaseAll(tokens)

			require.Equal(t, tt.want, tokenStrings(tokens))
		})
	}

	t.Run("Empty and blank input", func(t *testing.T) {
		for _, line := range []string{"", "   ", "\t\n\r "} {
			tokens, err := SplitArgs(line)
			require.NoError(t, err)
			require.Empty(t, tokens)
		}
	})

	t.Run("Unbalanced double quote", func(t *testing.T) {
		_, err := SplitArgs(`foo "bar`)
		require.ErrorIs(t, err, errs.ErrUnbalancedQuotes)
	})

	t.Run("Unbalanced single quote", func(t *testing.T) {
		_, err := SplitArgs(`foo 'bar`)
		require.ErrorIs(t, err, errs.ErrUnbalancedQuotes)
	})

	t.Run("Closing quote must precede whitespace", func(t *testing.T) {
		_, err := SplitArgs(`"a"b`)
		require.ErrorIs(t, err, errs.ErrTrailingGarbage)

		_, err = SplitArgs(`'a'b`)
		require.ErrorIs(t, err, errs.ErrTrailingGarbage)
	})
}

// TestTokenizerAllocationFailure drives both splitters into the allocator's
// budget mid-scan and checks that the sentinel surfaces and every token
// produced before the failure is released.
func TestTokenizerAllocationFailure(t *testing.T) {
	t.Run("Split releases partial tokens", func(t *testing.T) {
		useLimitedAllocator(t, 64)
		require.Equal(t, int64(0), alloc.Used())

		data := bytes.Repeat([]byte("longsegment,"), 40)
		_, err := Split(data, []byte(","))
		require.ErrorIs(t, err, errs.ErrAllocationFailure)
		require.Equal(t, int64(0), alloc.Used())
	})

	t.Run("SplitArgs releases partial state", func(t *testing.T) {
		useLimitedAllocator(t, 64)
		require.Equal(t, int64(0), alloc.Used())

		line := strings.Repeat("longword ", 40)
		_, err := SplitArgs(line)
		require.ErrorIs(t, err, errs.ErrAllocationFailure)
		require.Equal(t, int64(0), alloc.Used())
	})
}

func TestAppendRepr(t *testing.T) {
	repr := func(t *testing.T, data []byte) string {
		t.Helper()

		s, err := Empty()
		require.NoError(t, err)

		s, err = s.AppendRepr(data)
		require.NoError(t, err)
		defer s.Release()

		return s.String()
	}

	t.Run("Printable passes through", func(t *testing.T) {
		require.Equal(t, `"hello"`, repr(t, []byte("hello")))
	})

	t.Run("Control characters escape", func(t *testing.T) {
		require.Equal(t, `"a\nb\tc"`, repr(t, []byte("a\nb\tc")))
	})

	t.Run("Quotes and backslashes escape", func(t *testing.T) {
		require.Equal(t, `"\"\\"`, repr(t, []byte(`"\`)))
	})

	t.Run("Non-printable bytes become hex", func(t *testing.T) {
		require.Equal(t, `"\x00\xff\x1b"`, repr(t, []byte{0x00, 0xff, 0x1b}))
	})
}

// TestReprRoundTrip feeds AppendRepr output back through SplitArgs and checks
// the original bytes come back for every kind of byte.
func TestReprRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("simple"),
		[]byte("with spaces and\ttabs"),
		[]byte(`quotes " and \ slashes`),
		{0x00, 0x01, 0xfe, 0xff},
		[]byte("mix\x00of\x7fprint and not\n"),
		{},
	}

	for _, input := range inputs {
		s, err := Empty()
		require.NoError(t, err)

		s, err = s.AppendRepr(input)
		require.NoError(t, err)

		tokens, err := SplitArgs(s.String())
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		require.Equal(t, input, append([]byte{}, tokens[0].Bytes()...))

		ReleaseAll(tokens)
		s.Release()
	}
}
