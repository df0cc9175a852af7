package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#8dd3c7")
	require.NoError(t, err)
	assert.Equal(t, RGB(141, 211, 199), c)
	assert.Equal(t, "8DD3C7", c.Hex())

	c, err = ParseColor("FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	for _, bad := range []string{"", "#FFF", "zzzzzz", "#1234567"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrColor, bad)
	}
}

func TestPalette(t *testing.T) {
	assert.Equal(t, Microsoft, Palette("Microsoft"))
	assert.Equal(t, ColorBrewer, Palette(""))
	assert.Len(t, ColorBrewer, 12)
}

func TestBand(t *testing.T) {
	assert.Equal(t, GreyLight, Band(0))
	assert.Equal(t, GreyLight2, Band(1))
	assert.Equal(t, GreyLight, Band(4))
}

func TestMarginPreset(t *testing.T) {
	m, err := MarginPreset("tight")
	require.NoError(t, err)
	assert.Equal(t, 0.025, m.Left)

	m, err = MarginPreset("none")
	require.NoError(t, err)
	assert.Zero(t, m)

	_, err = MarginPreset("huge")
	assert.ErrorIs(t, err, ErrMargins)
}
