package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master gain when config leaves it unset
	AudioDefaultVolume = 0.5
)

// Sound Shapes
const (
	RotorBaseFreq   = 55.0
	RotorPulseRate  = 18.0
	CrashDuration   = 700 * time.Millisecond
	ChimeDuration   = 450 * time.Millisecond
	ChimeNoteGap    = 90 * time.Millisecond
	FanfareDelay    = 500 * time.Millisecond
	FanfareNoteTime = 140 * time.Millisecond
)
