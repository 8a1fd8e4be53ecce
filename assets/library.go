package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/orbital/ecs/component"
	"golang.org/x/sync/errgroup"
)

const SampleRate = 44100

// decodeWorkers bounds concurrent track decoding.
const decodeWorkers = 4

var (
	ErrUnsupportedAudio = errors.New("assets: unsupported audio format")
	ErrTrackNotLoaded   = errors.New("assets: track not loaded")
	ErrNoAudioContext   = errors.New("assets: no audio context")
)

// Library resolves asset paths under a root filesystem. Tracks are decoded once
// into PCM so every playback instance gets its own player over shared bytes.
type Library struct {
	fsys       fs.FS
	ctx        *audio.Context
	sampleRate int

	mu     sync.RWMutex
	images map[string]*ebiten.Image
	tracks map[component.TrackHandle][]byte
}

// NewLibrary creates a library over fsys. ctx may be nil when only decoding is
// needed; NewPlayer then fails.
func NewLibrary(fsys fs.FS, ctx *audio.Context) *Library {
	sampleRate := SampleRate
	if ctx != nil {
		sampleRate = ctx.SampleRate()
	}
	return &Library{
		fsys:       fsys,
		ctx:        ctx,
		sampleRate: sampleRate,
		images:     make(map[string]*ebiten.Image),
		tracks:     make(map[component.TrackHandle][]byte),
	}
}

// LoadFile reads an asset by assets-relative path.
func (l *Library) LoadFile(path string) ([]byte, error) {
	return fs.ReadFile(l.fsys, cleanAssetPath(path))
}

// LoadImage loads and caches an image asset.
func (l *Library) LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	l.mu.RLock()
	img, ok := l.images[clean]
	l.mu.RUnlock()
	if ok {
		return img, nil
	}

	b, err := fs.ReadFile(l.fsys, clean)
	if err != nil {
		return nil, err
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	img = ebiten.NewImageFromImage(decoded)

	l.mu.Lock()
	l.images[clean] = img
	l.mu.Unlock()
	return img, nil
}

// LoadTracks decodes every track not already loaded. Decoding runs on a
// bounded worker group; the first failure cancels the rest.
func (l *Library) LoadTracks(ctx context.Context, tracks []component.TrackHandle) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(decodeWorkers)
	for _, track := range tracks {
		if l.HasTrack(track) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pcm, err := l.decodeTrack(track)
			if err != nil {
				return err
			}
			l.mu.Lock()
			l.tracks[track] = pcm
			l.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (l *Library) HasTrack(track component.TrackHandle) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.tracks[track]
	return ok
}

// NewPlayer opens a fresh player over a loaded track.
func (l *Library) NewPlayer(track component.TrackHandle) (*audio.Player, error) {
	if l.ctx == nil {
		return nil, ErrNoAudioContext
	}
	l.mu.RLock()
	pcm, ok := l.tracks[track]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTrackNotLoaded, track)
	}
	return l.ctx.NewPlayerFromBytes(pcm), nil
}

func (l *Library) decodeTrack(track component.TrackHandle) ([]byte, error) {
	path := string(track)
	b, err := l.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load track %q: %w", path, err)
	}

	reader := bytes.NewReader(b)
	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.sampleRate, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(l.sampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.sampleRate, reader)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAudio, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode track %q: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read track %q: %w", path, err)
	}
	return pcm, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return strings.TrimPrefix(s, "./")
}
