package assets

import (
	"encoding/binary"
	"testing"
)

func TestRenderLength(t *testing.T) {
	for snd, tone := range tones {
		t.Run(snd.String(), func(t *testing.T) {
			buf := Render(tone)
			want := int(tone.Seconds*SampleRate) * 4
			if len(buf) != want {
				t.Fatalf("len = %d, want %d", len(buf), want)
			}
		})
	}
}

func TestRenderStereoAndBounded(t *testing.T) {
	tone := Tone{StartHz: 440, EndHz: 440, Seconds: 0.05, Volume: 0.5}
	buf := Render(tone)
	limit := int16(16384)
	sawPositive, sawNegative := false, false
	for i := 0; i+4 <= len(buf); i += 4 {
		l := int16(binary.LittleEndian.Uint16(buf[i:]))
		r := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		if l > limit || l < -limit {
			t.Fatalf("frame %d: sample %d exceeds volume", i/4, l)
		}
		sawPositive = sawPositive || l > 0
		sawNegative = sawNegative || l < 0
	}
	if !sawPositive || !sawNegative {
		t.Fatalf("square wave never swung both ways")
	}
}

func TestPlayOnNilSoundsIsSafe(t *testing.T) {
	var s *Sounds
	s.SetMuted(true)
	s.Play(SoundJump)
}
