package place

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontEnumFromTextSize(t *testing.T) {
	for _, tc := range []struct {
		textSize int64
		enum     uint32
	}{
		{8, 0},
		{14, 5},
		{48, 9},
		{1, 0},
		{100, 9},
		// Ties between two pixel sizes resolve to the smaller one.
		{13, 4},
		{16, 5},
		{20, 6},
	} {
		require.Equal(t, tc.enum, fontEnumFromTextSize(tc.textSize), "text size %d", tc.textSize)
	}
}

func TestNormalizeFontSize(t *testing.T) {
	require.Equal(t, uint32(7), normalizeFontSize(10))
	require.Equal(t, uint32(8), normalizeFontSize(11))
	require.Equal(t, uint32(9), normalizeFontSize(13))
	require.Equal(t, uint32(4), normalizeFontSize(4))
	require.Equal(t, uint32(20), normalizeFontSize(20))
}

func TestFontSizeName(t *testing.T) {
	require.Equal(t, "Size8", fontSizeName(0))
	require.Equal(t, "Size48", fontSizeName(9))
	require.Equal(t, "Size96", fontSizeName(14))
	require.Equal(t, "Unknown", fontSizeName(42))
}
