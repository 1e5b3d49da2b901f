package audio

import (
	"log"

	"github.com/lixenwraith/cave-copter/config"
)

// AudioService puts the SoundManager under hub lifecycle
// Opening the speaker happens in Start so a headless run fails soft
type AudioService struct {
	manager *SoundManager
}

func NewService() *AudioService { return &AudioService{} }

func (s *AudioService) Name() string { return "audio" }

func (s *AudioService) Dependencies() []string { return nil }

func (s *AudioService) Init(cfg *config.Config) error {
	s.manager = NewSoundManager(cfg.Audio.Volume, cfg.Audio.Enabled)
	return nil
}

// Start never fails; without a device the manager drops every cue
func (s *AudioService) Start() error {
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: %v, running silent", err)
	}
	return nil
}

func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// Manager is nil until Init
func (s *AudioService) Manager() *SoundManager { return s.manager }
