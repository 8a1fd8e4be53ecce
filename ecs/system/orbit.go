package system

import (
	"github.com/milk9111/orbital/ecs"
	"github.com/milk9111/orbital/ecs/component"
	"github.com/milk9111/orbital/logging"
	"go.uber.org/zap"
)

// OrbitSystem advances every orbit and writes its position into the transform.
type OrbitSystem struct {
	log      *zap.Logger
	reported map[ecs.Entity]struct{}
}

func NewOrbitSystem(log *zap.Logger) *OrbitSystem {
	return &OrbitSystem{
		log:      logging.OrNop(log),
		reported: make(map[ecs.Entity]struct{}),
	}
}

func (s *OrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().DeltaSeconds()
	ecs.ForEach2(w, component.OrbitComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, orbit *component.Orbit, t *component.Transform) {
		if err := orbit.Advance(dt); err != nil {
			if _, seen := s.reported[e]; !seen {
				s.reported[e] = struct{}{}
				s.log.Error("orbit frozen",
					zap.Stringer("entity", e),
					zap.Float64("radius", orbit.Radius()),
					zap.Float64("speed", orbit.Speed()),
					zap.Error(err))
			}
			return
		}
		t.X, t.Y = orbit.Position()
	})

	for e := range s.reported {
		if !ecs.IsAlive(w, e) {
			delete(s.reported, e)
		}
	}
}
