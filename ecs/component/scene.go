package component

// Screen is the top-level state the host game is in.
type Screen uint8

const (
	ScreenTitle Screen = iota
	ScreenLoading
	ScreenGameplay
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenLoading:
		return "loading"
	case ScreenGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// GameState is the singleton holding the current screen.
type GameState struct {
	Screen Screen
}

var GameStateComponent = NewComponent[GameState]()

// SceneScoped entities are destroyed when their screen is left.
type SceneScoped struct {
	Screen Screen
}

var SceneScopedComponent = NewComponent[SceneScoped]()
