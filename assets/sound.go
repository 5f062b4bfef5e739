// Package assets holds the game's sound effects. They are short square-wave
// sweeps rendered at startup, so nothing has to be shipped as a file.
package assets

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

type Sound int

const (
	SoundJump Sound = iota
	SoundDash
	SoundLand
	SoundDie
	SoundFruit
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundDash:
		return "dash"
	case SoundLand:
		return "land"
	case SoundDie:
		return "die"
	case SoundFruit:
		return "fruit"
	}
	return "unknown"
}

// Tone is a linear pitch sweep from StartHz to EndHz.
type Tone struct {
	StartHz float64
	EndHz   float64
	Seconds float64
	Volume  float64
}

var tones = map[Sound]Tone{
	SoundJump:  {StartHz: 330, EndHz: 660, Seconds: 0.12, Volume: 0.25},
	SoundDash:  {StartHz: 880, EndHz: 220, Seconds: 0.10, Volume: 0.2},
	SoundLand:  {StartHz: 140, EndHz: 90, Seconds: 0.06, Volume: 0.3},
	SoundDie:   {StartHz: 440, EndHz: 55, Seconds: 0.5, Volume: 0.3},
	SoundFruit: {StartHz: 523, EndHz: 1046, Seconds: 0.4, Volume: 0.25},
}

// Render returns t as 16-bit little-endian stereo PCM at SampleRate, the
// layout audio.Context.NewPlayerFromBytes plays directly. The last 20% of the
// tone fades out to avoid a click.
func Render(t Tone) []byte {
	n := int(t.Seconds * SampleRate)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		amp := t.Volume
		if progress > 0.8 {
			amp *= (1 - progress) / 0.2
		}
		v := amp
		if phase >= 0.5 {
			v = -amp
		}
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// Sounds plays the rendered effects on the shared audio context.
type Sounds struct {
	players map[Sound]*audio.Player
	muted   bool
}

func NewSounds() *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	s := &Sounds{players: make(map[Sound]*audio.Player, len(tones))}
	for snd, t := range tones {
		s.players[snd] = ctx.NewPlayerFromBytes(Render(t))
	}
	return s
}

func (s *Sounds) SetMuted(m bool) {
	if s != nil {
		s.muted = m
	}
}

// Play restarts snd from the beginning.
func (s *Sounds) Play(snd Sound) {
	if s == nil || s.muted {
		return
	}
	p, ok := s.players[snd]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound %s: rewind: %v", snd, err)
		return
	}
	p.Play()
}
