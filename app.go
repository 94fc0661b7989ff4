package trafficplayback

import (
	"context"
	"time"

	"github.com/theoremus-urban-solutions/traffic-playback/config"
	"github.com/theoremus-urban-solutions/traffic-playback/playback"
	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
)

var (
	controller *playback.Controller
	frames     *FrameCache
)

// LoadAppConfig loads and validates config.yml
func LoadAppConfig() error {
	return config.LoadAppConfig()
}

// NewControllerFromConfig builds a playback controller for a configured
// result source (empty name selects the default source).
func NewControllerFromConfig(sourceName string) *playback.Controller {
	src := config.SelectSource(sourceName)
	client := simdata.NewClient(src)
	interval := time.Duration(config.Config.Playback.TickIntervalMS) * time.Millisecond
	return playback.NewController(client, src.RunPrefix, interval)
}

// InitController creates the shared controller for the HTTP service and
// performs the initial load. A failed load is not fatal: the service starts
// in the failed state and a reload can retry.
func InitController(ctx context.Context, sourceName string) error {
	controller = NewControllerFromConfig(sourceName)
	frames = NewFrameCache(controller)
	return controller.Initialize(ctx)
}
