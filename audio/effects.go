package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cave-copter/parameter"
)

// Wave maps a phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

var (
	sine   Wave = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	square Wave = func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}
	saw   Wave = func(p float64) float64 { return 2*p - 1 }
	noise Wave = func(float64) float64 { return rand.Float64()*2 - 1 }
)

// tone is a fixed-length wave with an optional linear attack and release
type tone struct {
	wave  Wave
	step  float64 // Phase advance per sample
	phase float64

	pos, total      int
	attack, release int
}

// newTone creates an unshaped tone of duration d
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{wave: wave, step: freq / float64(rate), total: rate.N(d)}
}

// shaped sets the attack and release ramps, clamped to the tone length
func (t *tone) shaped(attack, release time.Duration, rate beep.SampleRate) *tone {
	t.attack = min(rate.N(attack), t.total)
	t.release = min(rate.N(release), t.total-t.attack)
	return t
}

// gain is the envelope level at sample i
func (t *tone) gain(i int) float64 {
	switch {
	case i < t.attack:
		return float64(i) / float64(t.attack)
	case i >= t.total-t.release:
		return float64(t.total-i) / float64(t.release)
	}
	return 1
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && t.pos < t.total {
		v := t.wave(t.phase) * t.gain(t.pos)
		samples[n] = [2]float64{v, v}

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, n > 0
}

func (t *tone) Err() error { return nil }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain becomes a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// rotor is the endless blade chop heard while flying
// Lifting raises the chop rate and the body of the sound
type rotor struct {
	rate    beep.SampleRate
	pos     int
	phase   float64
	lifting atomic.Bool
}

func newRotor(rate beep.SampleRate) *rotor {
	return &rotor{rate: rate}
}

func (r *rotor) Stream(samples [][2]float64) (n int, ok bool) {
	pulse := parameter.RotorPulseRate
	body := 0.5
	if r.lifting.Load() {
		pulse *= 1.3
		body = 0.8
	}

	for i := range samples {
		r.phase += pulse / float64(r.rate)
		r.phase -= math.Floor(r.phase)

		// Sharp attack at each blade pass, exponential decay until the next
		chop := math.Exp(-r.phase * 6)

		t := float64(r.pos) / float64(r.rate)
		hum := math.Sin(2 * math.Pi * parameter.RotorBaseFreq * t)
		hiss := rand.Float64()*2 - 1

		sample := 0.25 * body * chop * (0.6*hum + 0.4*hiss)
		samples[i][0] = sample
		samples[i][1] = sample
		r.pos++
	}
	return len(samples), true
}

func (r *rotor) Err() error { return nil }

// Sound effect builders; vol is the master gain

// crashSound is a decaying noise burst over a low rumble
func crashSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.CrashDuration
	burst := newTone(0, d, noise, rate).shaped(5*time.Millisecond, d*3/4, rate)
	rumble := newTone(70, d, saw, rate).shaped(10*time.Millisecond, d/2, rate)

	mixed := beep.Mix(
		newVolume(burst, 0.6),
		newVolume(rumble, 0.4),
	)
	return newVolume(mixed, vol)
}

// chimeSound is a rising two-note cue for a difficulty step
func chimeSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.ChimeDuration
	low := newTone(1046.5, d, sine, rate).shaped(5*time.Millisecond, d*2/3, rate)  // C6
	high := newTone(1568.0, d, sine, rate).shaped(5*time.Millisecond, d*2/3, rate) // G6

	mixed := beep.Mix(
		newVolume(low, 0.5),
		newVolume(beep.Seq(beep.Silence(rate.N(parameter.ChimeNoteGap)), high), 0.5),
	)
	return newVolume(mixed, vol)
}

// fanfareNotes is a C major arpeggio
var fanfareNotes = []float64{523.25, 659.25, 783.99, 1046.5}

// fanfareSound announces a leaderboard entry
func fanfareSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, f := range fanfareNotes {
		d := parameter.FanfareNoteTime
		if i == len(fanfareNotes)-1 {
			d *= 3 // Hold the top note
		}
		notes = append(notes, newTone(f, d, square, rate).shaped(5*time.Millisecond, d/2, rate))
	}
	return newVolume(beep.Seq(notes...), vol*0.4)
}
