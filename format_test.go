package bstr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatInt(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{9, "9"},
		{10, "10"},
		{-1, "-1"},
		{123456789, "123456789"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}

	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			var buf [maxIntDigits]byte
			n := formatInt(buf[:], tt.value)
			require.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestFormatUint(t *testing.T) {
	cases := []struct {
		value uint64
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{1000, "1000"},
		{math.MaxUint64, "18446744073709551615"},
	}

	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			var buf [maxIntDigits]byte
			n := formatUint(buf[:], tt.value)
			require.Equal(t, tt.want, string(buf[:n]))
		})
	}
}

func TestAppendFormat(t *testing.T) {
	s, err := New("Sum is: ")
	require.NoError(t, err)
	defer s.Release()

	s, err = s.AppendFormat("%d + %d = %d", 2, 3, 5)
	require.NoError(t, err)

	requireValid(t, s)
	require.Equal(t, "Sum is: 2 + 3 = 5", s.String())
}

func TestAppendFmt(t *testing.T) {
	appendFmt := func(t *testing.T, base, format string, args ...any) string {
		t.Helper()

		s, err := New(base)
		require.NoError(t, err)

		s, err = s.AppendFmt(format, args...)
		require.NoError(t, err)
		defer s.Release()

		requireValid(t, s)

		return s.String()
	}

	t.Run("Signed and unsigned 64-bit", func(t *testing.T) {
		got := appendFmt(t, "", "%i,%U", -5, uint64(math.MaxUint64))
		require.Equal(t, "-5,18446744073709551615", got)

		got = appendFmt(t, "", "%I", int64(math.MinInt64))
		require.Equal(t, "-9223372036854775808", got)
	})

	t.Run("Machine-width integers", func(t *testing.T) {
		got := appendFmt(t, "", "%i %u", -42, uint(42))
		require.Equal(t, "-42 42", got)
	})

	t.Run("Narrow integer types widen", func(t *testing.T) {
		got := appendFmt(t, "", "%i %i %u", int8(-8), int32(-32), uint16(16))
		require.Equal(t, "-8 -32 16", got)
	})

	t.Run("Strings and byte slices", func(t *testing.T) {
		got := appendFmt(t, "x:", "%s|%s", "str", []byte("bytes"))
		require.Equal(t, "x:str|bytes", got)
	})

	t.Run("Buffer argument", func(t *testing.T) {
		b, err := New("inner")
		require.NoError(t, err)
		defer b.Release()

		got := appendFmt(t, "", "[%S]", b)
		require.Equal(t, "[inner]", got)
	})

	t.Run("Percent escape", func(t *testing.T) {
		got := appendFmt(t, "", "100%% sure")
		require.Equal(t, "100% sure", got)
	})

	t.Run("Unknown directive emitted verbatim", func(t *testing.T) {
		got := appendFmt(t, "", "a%qb")
		require.Equal(t, "aqb", got)
	})

	t.Run("Trailing percent emitted verbatim", func(t *testing.T) {
		got := appendFmt(t, "", "50%")
		require.Equal(t, "50%", got)
	})

	t.Run("Missing argument marker", func(t *testing.T) {
		got := appendFmt(t, "", "%s and %i")
		require.Equal(t, "%!s(MISSING) and %!i(MISSING)", got)
	})

	t.Run("Wrong argument type marker", func(t *testing.T) {
		got := appendFmt(t, "", "%i", "nope")
		require.Equal(t, "%!i(string=nope)", got)
	})

	t.Run("Appends after existing content", func(t *testing.T) {
		got := appendFmt(t, "user=", "%s id=%i", "alice", 7)
		require.Equal(t, "user=alice id=7", got)
	})

	t.Run("Long expansion forces growth", func(t *testing.T) {
		long := string(make([]byte, 5000))
		got := appendFmt(t, "", "<%s>", long)
		require.Equal(t, "<"+long+">", got)
	})
}
