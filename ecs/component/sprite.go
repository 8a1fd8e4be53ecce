package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasLayout slices a sprite sheet into a grid of equally sized tiles,
// indexed row-major from the top-left.
type AtlasLayout struct {
	TileW   int
	TileH   int
	Columns int
	Rows    int
}

// Len is the number of tiles in the grid.
func (l AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Rect returns the source rectangle of tile index. Out-of-range indices wrap.
func (l AtlasLayout) Rect(index int) image.Rectangle {
	n := l.Len()
	if n <= 0 {
		return image.Rectangle{}
	}
	index %= n
	if index < 0 {
		index += n
	}
	x := (index % l.Columns) * l.TileW
	y := (index / l.Columns) * l.TileH
	return image.Rect(x, y, x+l.TileW, y+l.TileH)
}

type Sprite struct {
	Image *ebiten.Image
	// Atlas is nil for sprites drawn from the whole image.
	Atlas *AtlasLayout
	Index int
}

var SpriteComponent = NewComponent[Sprite]()
