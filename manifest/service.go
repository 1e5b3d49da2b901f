package manifest

import (
	"github.com/lixenwraith/cave-copter/audio"
	"github.com/lixenwraith/cave-copter/leaderboard"
	"github.com/lixenwraith/cave-copter/service"
)

// RegisterServices adds every infrastructure service to the hub
// Frontend resources (the tcell screen, the ebiten window) are owned by the binaries
func RegisterServices(hub *service.Hub) error {
	for _, svc := range []service.Service{
		audio.NewService(),
		leaderboard.NewService(),
	} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}
	return nil
}
