package component

type PlanetTag struct{}

var PlanetTagComponent = NewComponent[PlanetTag]()

type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()

// Name is a debug label.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
