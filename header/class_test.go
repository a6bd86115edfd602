package header

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassFor(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     Class
	}{
		{"Zero", 0, ClassTiny},
		{"Tiny upper bound", 31, ClassTiny},
		{"Small lower bound", 32, ClassSmall},
		{"Small upper bound", 255, ClassSmall},
		{"Medium lower bound", 256, ClassMedium},
		{"Medium upper bound", 65535, ClassMedium},
		{"Large lower bound", 65536, ClassLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassFor(tt.capacity))
		})
	}

	if bits.UintSize == 64 {
		t.Run("Large upper bound", func(t *testing.T) {
			require.Equal(t, ClassLarge, ClassFor(int(int64(1)<<32-1)))
		})
		t.Run("Huge lower bound", func(t *testing.T) {
			require.Equal(t, ClassHuge, ClassFor(int(int64(1)<<32)))
		})
	}
}

func TestClassSize(t *testing.T) {
	require.Equal(t, 1, ClassTiny.Size())
	require.Equal(t, 3, ClassSmall.Size())
	require.Equal(t, 5, ClassMedium.Size())
	require.Equal(t, 9, ClassLarge.Size())
	require.Equal(t, 17, ClassHuge.Size())
}

func TestClassMaxLen(t *testing.T) {
	require.Equal(t, 31, ClassTiny.MaxLen())
	require.Equal(t, 255, ClassSmall.MaxLen())
	require.Equal(t, 65535, ClassMedium.MaxLen())

	if bits.UintSize == 64 {
		require.Equal(t, int(int64(1)<<32-1), ClassLarge.MaxLen())
	}
}

func TestClassString(t *testing.T) {
	require.Equal(t, "tiny", ClassTiny.String())
	require.Equal(t, "small", ClassSmall.String())
	require.Equal(t, "medium", ClassMedium.String())
	require.Equal(t, "large", ClassLarge.String())
	require.Equal(t, "huge", ClassHuge.String())
	require.Equal(t, "unknown", Class(7).String())
}

func TestTagOf(t *testing.T) {
	// The class tag survives whatever the high flag bits hold.
	require.Equal(t, ClassTiny, TagOf(0|10<<ClassBits))
	require.Equal(t, ClassMedium, TagOf(uint8(ClassMedium)))
	require.Equal(t, ClassHuge, TagOf(uint8(ClassHuge)|0xF8))
}
