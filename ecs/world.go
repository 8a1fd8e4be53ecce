package ecs

import (
	"time"

	"github.com/milk9111/orbital/ecs/component"
)

// World owns entities, component storage, the command queue and the step clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
	time     Time
}

// Time is the clock for the step currently being simulated.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
	Step    uint64
}

// DeltaSeconds returns the step length in seconds.
func (t Time) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and releases its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// Events returns the world command queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Time returns the clock of the current step.
func (w *World) Time() Time {
	if w == nil {
		return Time{}
	}
	return w.time
}

// Advance moves the step clock forward by dt. Called once per host frame before
// the scheduler runs.
func (w *World) Advance(dt time.Duration) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.time.Delta = dt
	w.time.Elapsed += dt
	w.time.Step++
}
