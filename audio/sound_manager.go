package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cave-copter/engine"
	"github.com/lixenwraith/cave-copter/event"
	"github.com/lixenwraith/cave-copter/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Sound identifies a one-shot effect
type Sound int

const (
	SoundCrash Sound = iota
	SoundChime
	SoundFanfare
	soundCount
)

// SoundManager plays the game's audio in response to session events
// Without an output device it runs in silent mode: requests are counted but not played
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rotor       *rotor
	rotorCtrl   *beep.Ctrl
	fanfare     *time.Timer
	volume      float64
	initialized bool
	armed       bool         // Initialize was called; a muted manager opens the device on unmute
	openDevice  func() error // speaker.Init by default; swapped by tests

	playing    atomic.Bool // Session is in the playing state
	muted      atomic.Bool
	silentMode atomic.Bool
	played     [soundCount]atomic.Int64
}

// NewSoundManager creates a manager at the given master volume
// A disabled manager never opens the speaker
func NewSoundManager(volume float64, enabled bool) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	sm.openDevice = func() error {
		if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
			return err
		}
		speaker.Play(sm.mixer)
		return nil
	}
	sm.muted.Store(!enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
// A muted manager defers the open until the first unmute
// On failure the manager falls back to silent mode and the error is returned for logging
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.armed = true
	if sm.initialized || sm.muted.Load() || sm.silentMode.Load() {
		return nil
	}

	if err := sm.openDevice(); err != nil {
		sm.silentMode.Store(true)
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.fanfare != nil {
		sm.fanfare.Stop()
		sm.fanfare = nil
	}
	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.rotorCtrl != nil {
		sm.rotorCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns it
// Unmuting opens a deferred speaker and resumes the rotor mid-run
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	if muted {
		sm.StopRotor()
		return true
	}

	sm.mu.Lock()
	deferred := sm.armed && !sm.initialized
	sm.mu.Unlock()
	if deferred {
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v, running silent", err)
		}
	}
	if sm.playing.Load() {
		sm.StartRotor()
	}
	return false
}

// IsSilent reports whether sounds are currently suppressed
func (sm *SoundManager) IsSilent() bool {
	return sm.silentMode.Load() || sm.muted.Load()
}

// Played returns how many times s was requested
func (sm *SoundManager) Played(s Sound) int64 {
	if s < 0 || s >= soundCount {
		return 0
	}
	return sm.played[s].Load()
}

// Play starts a one-shot effect
func (sm *SoundManager) Play(s Sound) {
	if s < 0 || s >= soundCount {
		return
	}
	sm.played[s].Add(1)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized || sm.IsSilent() {
		return
	}

	var st beep.Streamer
	switch s {
	case SoundCrash:
		st = crashSound(sampleRate, sm.volume)
	case SoundChime:
		st = chimeSound(sampleRate, sm.volume)
	case SoundFanfare:
		st = fanfareSound(sampleRate, sm.volume)
	}

	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// StartRotor starts the looping rotor sound if it is not already running
func (sm *SoundManager) StartRotor() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rotor == nil {
		sm.rotor = newRotor(sampleRate)
	}
	if !sm.initialized || sm.IsSilent() {
		return
	}
	if sm.rotorCtrl != nil && !sm.rotorCtrl.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(sm.rotor, sm.volume), Paused: false}
	speaker.Lock()
	sm.rotorCtrl = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopRotor silences the rotor loop
func (sm *SoundManager) StopRotor() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rotorCtrl == nil {
		return
	}
	if sm.initialized {
		speaker.Lock()
	}
	sm.rotorCtrl.Paused = true
	// A paused Ctrl still sits in the mixer; dropping the streamer lets it drain out
	sm.rotorCtrl.Streamer = nil
	if sm.initialized {
		speaker.Unlock()
	}
	sm.rotorCtrl = nil
}

// RotorActive reports whether the rotor loop is running
func (sm *SoundManager) RotorActive() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.rotorCtrl != nil && !sm.rotorCtrl.Paused
}

// setLifting changes the rotor pitch
func (sm *SoundManager) setLifting(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.rotor == nil {
		sm.rotor = newRotor(sampleRate)
	}
	sm.rotor.lifting.Store(on)
}

// scheduleFanfare plays the fanfare after FanfareDelay, replacing any pending one
func (sm *SoundManager) scheduleFanfare() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.fanfare != nil {
		sm.fanfare.Stop()
	}
	sm.fanfare = time.AfterFunc(parameter.FanfareDelay, func() {
		sm.Play(SoundFanfare)
	})
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventStateChanged:
		p, ok := ev.Payload.(*event.StateChangePayload)
		if !ok {
			return
		}
		sm.playing.Store(p.To == engine.StatePlaying)
		if p.To == engine.StatePlaying {
			sm.StartRotor()
		} else {
			sm.StopRotor()
		}

	case event.EventLiftStart:
		sm.setLifting(true)

	case event.EventLiftStop:
		sm.setLifting(false)

	case event.EventCollision:
		sm.StopRotor()
		sm.Play(SoundCrash)

	case event.EventMilestoneReached:
		sm.Play(SoundChime)

	case event.EventHighScore:
		sm.scheduleFanfare()

	default:
		log.Printf("audio: unexpected event %s", ev.Type)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventStateChanged,
		event.EventLiftStart,
		event.EventLiftStop,
		event.EventCollision,
		event.EventMilestoneReached,
		event.EventHighScore,
	}
}
