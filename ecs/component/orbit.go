package component

import (
	"errors"
	"math"
)

// ErrDegenerateOrbit marks an orbit whose period is zero or not finite. It is a
// configuration error: the angular step would be infinite or undefined.
var ErrDegenerateOrbit = errors.New("orbit: degenerate period")

// Orbit is circular motion around the scene origin. The period is derived from
// radius and speed and is recomputed by every mutator, never by callers.
type Orbit struct {
	radius  float64
	degrees float64
	speed   float64
	period  float64
}

var OrbitComponent = NewComponent[Orbit]()

func periodFor(radius, speed float64) float64 {
	return 2 * math.Pi * radius / speed
}

func validPeriod(p float64) bool {
	return p != 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}

// NewOrbit builds an orbit at the given angle. speed is linear speed along the
// path, so the period shrinks as speed grows and stretches as radius grows.
func NewOrbit(radius, degrees, speed float64) (*Orbit, error) {
	o := &Orbit{radius: radius, degrees: degrees, speed: speed}
	o.updatePeriod()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate reports ErrDegenerateOrbit when the current period cannot drive Advance.
func (o *Orbit) Validate() error {
	if o == nil || !validPeriod(o.period) {
		return ErrDegenerateOrbit
	}
	return nil
}

// AddSpeed changes the linear speed by delta.
func (o *Orbit) AddSpeed(delta float64) {
	o.speed += delta
	o.updatePeriod()
}

// AddRadius changes the distance from the origin by delta.
func (o *Orbit) AddRadius(delta float64) {
	o.radius += delta
	o.updatePeriod()
}

func (o *Orbit) updatePeriod() {
	o.period = periodFor(o.radius, o.speed)
}

// Advance moves the body dt seconds along its path. The angle is left
// untouched when the period is degenerate.
func (o *Orbit) Advance(dt float64) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.degrees += 360 * (dt / o.period)
	return nil
}

// Position returns the Cartesian offset from the origin.
func (o *Orbit) Position() (x, y float64) {
	rad := o.degrees * math.Pi / 180
	return o.radius * math.Cos(rad), o.radius * math.Sin(rad)
}

func (o *Orbit) Radius() float64  { return o.radius }
func (o *Orbit) Degrees() float64 { return o.degrees }
func (o *Orbit) Speed() float64   { return o.speed }
func (o *Orbit) Period() float64  { return o.period }
