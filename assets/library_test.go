package assets

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/milk9111/orbital/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeWAV(t *testing.T, frames int) []byte {
	t.Helper()
	data := make([]byte, frames*4)
	for i := range data {
		data[i] = byte(i)
	}
	var buf bytes.Buffer
	le := binary.LittleEndian
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, le, uint32(36+len(data))))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(2), uint32(SampleRate), uint32(SampleRate * 4), uint16(4), uint16(16)} {
		require.NoError(t, binary.Write(&buf, le, v))
	}
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, le, uint32(len(data))))
	buf.Write(data)
	return buf.Bytes()
}

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"images/planet.png":          "images/planet.png",
		"assets/images/planet.png":   "images/planet.png",
		"./audio/a.mp3":              "audio/a.mp3",
		"/home/u/assets/audio/b.ogg": "audio/b.ogg",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestLoadTracks(t *testing.T) {
	fsys := fstest.MapFS{
		"audio/a.wav":   {Data: makeWAV(t, 64)},
		"audio/b.wav":   {Data: makeWAV(t, 32)},
		"audio/c.flac":  {Data: []byte("fLaC")},
		"audio/bad.wav": {Data: []byte("not a wav")},
	}

	t.Run("decodes_all", func(t *testing.T) {
		lib := NewLibrary(fsys, nil)
		tracks := []component.TrackHandle{"audio/a.wav", "assets/audio/b.wav"}
		require.NoError(t, lib.LoadTracks(context.Background(), tracks))
		for _, tr := range tracks {
			assert.True(t, lib.HasTrack(tr), tr)
		}
	})

	t.Run("unsupported_format", func(t *testing.T) {
		lib := NewLibrary(fsys, nil)
		err := lib.LoadTracks(context.Background(), []component.TrackHandle{"audio/c.flac"})
		assert.ErrorIs(t, err, ErrUnsupportedAudio)
	})

	t.Run("missing_file", func(t *testing.T) {
		lib := NewLibrary(fsys, nil)
		err := lib.LoadTracks(context.Background(), []component.TrackHandle{"audio/missing.wav"})
		assert.Error(t, err)
		assert.False(t, lib.HasTrack("audio/missing.wav"))
	})

	t.Run("corrupt_file", func(t *testing.T) {
		lib := NewLibrary(fsys, nil)
		err := lib.LoadTracks(context.Background(), []component.TrackHandle{"audio/bad.wav"})
		assert.Error(t, err)
	})
}

func TestNewPlayerRequiresContext(t *testing.T) {
	lib := NewLibrary(fstest.MapFS{}, nil)
	_, err := lib.NewPlayer("audio/a.wav")
	assert.ErrorIs(t, err, ErrNoAudioContext)
}
