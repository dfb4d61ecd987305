package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVIXLevelBands(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{9, "low"}, {11.99, "low"},
		{12, "moderate"}, {19.99, "moderate"},
		{20, "elevated"}, {24.99, "elevated"},
		{25, "high"}, {34.99, "high"},
		{35, "extreme"}, {80, "extreme"},
	}
	for _, c := range cases {
		level, desc := VIXLevel(c.value)
		require.Equal(t, c.want, level, "vix %v", c.value)
		require.NotEmpty(t, desc)
	}
}
