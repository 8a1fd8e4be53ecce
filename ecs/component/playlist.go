package component

import "errors"

var ErrEmptyPlaylist = errors.New("playlist: no tracks")

// BeforeStart is the index a playlist holds between Start and the first advance.
const BeforeStart = -1

// Playlist command event types carried on the world event queue.
const (
	EventStartMusic    = "playlist.start"
	EventNextSong      = "playlist.next"
	EventTrackFinished = "playlist.track_finished"
)

// TrackHandle identifies a loaded music asset. It is a plain value and may be
// copied freely.
type TrackHandle string

// Playlist is an ordered, fixed list of tracks plus the index of the current one.
type Playlist struct {
	tracks []TrackHandle
	index  int
}

var PlaylistComponent = NewComponent[Playlist]()

func NewPlaylist(tracks []TrackHandle) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmptyPlaylist
	}
	return &Playlist{tracks: append([]TrackHandle(nil), tracks...)}, nil
}

// Start rewinds to the before-start sentinel. The next Resolve lands on track 0.
func (p *Playlist) Start() {
	p.index = BeforeStart
}

// Resolve validates the index and returns the track it points at. A sentinel
// or out-of-range index wraps to 0; a valid index is returned unchanged.
//
// NOTE(review): Resolve never increments. Every advance, including the one
// after a finished track, therefore replays the current track, which after
// Start is always track 0. Sequential play needs a caller to move the index
// first. Kept as-is pending a product decision.
func (p *Playlist) Resolve() TrackHandle {
	if p.index < 0 || p.index >= len(p.tracks) {
		p.index = 0
	}
	return p.tracks[p.index]
}

// Seek moves the index without validating it; the next Resolve wraps an
// out-of-range value back to 0.
func (p *Playlist) Seek(index int) {
	p.index = index
}

func (p *Playlist) Index() int {
	return p.index
}

func (p *Playlist) Len() int {
	return len(p.tracks)
}

func (p *Playlist) Tracks() []TrackHandle {
	return append([]TrackHandle(nil), p.tracks...)
}
