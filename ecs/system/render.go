package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
)

// RenderSystem draws every (Transform, Sprite) entity with the scene origin at
// the screen center and +Y pointing up, as orbit positions are mathematical.
type RenderSystem struct {
	Zoom float64
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{Zoom: 1}
}

type drawItem struct {
	e ecs.Entity
	t *component.Transform
	s *component.Sprite
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	zoom := r.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Image == nil {
			return
		}
		items = append(items, drawItem{e: e, t: t, s: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].t.Z != items[j].t.Z {
			return items[i].t.Z < items[j].t.Z
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		img := it.s.Image
		if it.s.Atlas != nil {
			if sub, ok := img.SubImage(it.s.Atlas.Rect(it.s.Index)).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)

		sx := it.t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := it.t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(it.t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(cx+it.t.X*zoom, cy-it.t.Y*zoom)
		op.Filter = ebiten.FilterNearest

		screen.DrawImage(img, op)
	}
}
