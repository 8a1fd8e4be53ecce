package component

import "github.com/google/uuid"

// AudioCategory groups playback instances for queries and volume rules.
type AudioCategory uint8

const (
	CategoryMusic AudioCategory = iota + 1
	CategorySoundEffect
)

func (c AudioCategory) String() string {
	switch c {
	case CategoryMusic:
		return "music"
	case CategorySoundEffect:
		return "sound_effect"
	default:
		return "unknown"
	}
}

// PlaybackInstance is one playing sound. The playback system owns the sink
// behind it and destroys the entity when the sound ends when Despawn is set.
type PlaybackInstance struct {
	ID       uuid.UUID
	Track    TrackHandle
	Category AudioCategory
	Volume   float64
	Despawn  bool
}

var PlaybackInstanceComponent = NewComponent[PlaybackInstance]()

// GlobalVolume scales every playback instance. Changes apply to sounds that are
// already playing.
type GlobalVolume struct {
	Volume float64
}

var GlobalVolumeComponent = NewComponent[GlobalVolume]()
