package leaderboard

import "github.com/lixenwraith/cave-copter/config"

// Service loads the board at Init and hands out the recorder that writes to it
type Service struct {
	board    *Board
	recorder *Recorder
}

func NewService() *Service { return &Service{} }

func (s *Service) Name() string { return "leaderboard" }

func (s *Service) Dependencies() []string { return nil }

// Init fails on a corrupt file so a bad table is never overwritten
func (s *Service) Init(cfg *config.Config) error {
	board, err := NewBoard(FileStore{Path: cfg.Leaderboard.Path}, cfg.Leaderboard.Size)
	if err != nil {
		return err
	}
	s.board = board
	s.recorder = NewRecorder(board, cfg.Leaderboard.Initials)
	return nil
}

func (s *Service) Start() error { return nil }

// Stop has nothing to flush; Submit saves as it goes
func (s *Service) Stop() error { return nil }

func (s *Service) Board() *Board { return s.board }

func (s *Service) Recorder() *Recorder { return s.recorder }
