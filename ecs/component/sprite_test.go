package component

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlasLayoutRect(t *testing.T) {
	l := AtlasLayout{TileW: 100, TileH: 100, Columns: 13, Rows: 2}
	require.Equal(t, 26, l.Len())

	cases := map[int]image.Rectangle{
		0:  image.Rect(0, 0, 100, 100),
		12: image.Rect(1200, 0, 1300, 100),
		13: image.Rect(0, 100, 100, 200),
		25: image.Rect(1200, 100, 1300, 200),
		26: image.Rect(0, 0, 100, 100),
		-1: image.Rect(1200, 100, 1300, 200),
	}
	for index, want := range cases {
		assert.Equal(t, want, l.Rect(index), "index %d", index)
	}

	assert.Equal(t, image.Rectangle{}, AtlasLayout{}.Rect(3))
}

func TestParseAsteroidSize(t *testing.T) {
	for _, size := range []AsteroidSize{AsteroidDust, AsteroidSmall, AsteroidLarge} {
		got, err := ParseAsteroidSize(size.String())
		require.NoError(t, err)
		assert.Equal(t, size, got)
	}

	_, err := ParseAsteroidSize("huge")
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "music", CategoryMusic.String())
	assert.Equal(t, "sound_effect", CategorySoundEffect.String())
	assert.Equal(t, "unknown", AudioCategory(0).String())
	assert.Equal(t, "gameplay", ScreenGameplay.String())
	assert.Equal(t, "asteroid_size(9)", AsteroidSize(9).String())
}
