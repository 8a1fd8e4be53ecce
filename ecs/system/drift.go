package system

import (
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
)

// DriftSystem applies radius drift. It must be scheduled before OrbitSystem so
// the angular step of the same tick uses the post-drift period.
type DriftSystem struct{}

func NewDriftSystem() *DriftSystem {
	return &DriftSystem{}
}

func (s *DriftSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().DeltaSeconds()
	ecs.ForEach2(w, component.OrbitComponent.Kind(), component.DriftComponent.Kind(), func(_ ecs.Entity, orbit *component.Orbit, drift *component.Drift) {
		drift.Apply(orbit, dt)
	})
}
