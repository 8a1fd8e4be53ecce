package component

// Drift changes the radius of the Orbit on the same entity over time.
type Drift struct {
	// Rate is radius units per second; negative values pull the body inward.
	Rate float64
}

var DriftComponent = NewComponent[Drift]()

// Apply mutates o by Rate*dt. The orbit recomputes its period as part of the
// mutation, so an Advance later in the same step sees the new period.
func (d Drift) Apply(o *Orbit, dt float64) {
	if o == nil {
		return
	}
	o.AddRadius(d.Rate * dt)
}
