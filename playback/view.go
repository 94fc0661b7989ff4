package playback

import (
	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
	"github.com/theoremus-urban-solutions/traffic-playback/utils"
)

// VehicleView is one vehicle's state with its projected map position.
type VehicleView struct {
	ID        string  `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Speed     float64 `json:"speed"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FrameView is one frame prepared for the presentation layer.
type FrameView struct {
	Timestamp  string        `json:"timestamp"`
	Congestion float64       `json:"congestion"`
	Vehicles   []VehicleView `json:"vehicles"`
}

// View is the presentation boundary object. The rendering surface reads it
// and issues Play/Pause/SetStep back to the controller; it has no write
// access to controller state.
type View struct {
	Frame      FrameView `json:"frame"`
	Step       int       `json:"step"`
	TotalSteps int       `json:"totalSteps"`
	IsPlaying  bool      `json:"isPlaying"`
	Loading    bool      `json:"loading"`
	Source     string    `json:"source"`
	LoadError  string    `json:"loadError,omitempty"`
}

// View derives the current presentation state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{
		Frame:      buildFrameView(c.frameLocked(c.step)),
		Step:       c.step,
		TotalSteps: len(c.run),
		IsPlaying:  c.playing,
		Loading:    c.loading,
		Source:     c.source,
	}
	if c.loadErr != nil {
		v.LoadError = c.loadErr.Error()
	}
	return v
}

func buildFrameView(f simdata.Frame) FrameView {
	fv := FrameView{
		Timestamp:  f.Timestamp,
		Congestion: f.Congestion,
		Vehicles:   make([]VehicleView, 0, len(f.Vehicles)),
	}
	for _, veh := range f.Vehicles {
		lat, lon := utils.ProjectToLatLon(veh.X, veh.Y)
		fv.Vehicles = append(fv.Vehicles, VehicleView{
			ID:        veh.ID,
			X:         veh.X,
			Y:         veh.Y,
			Speed:     veh.Speed,
			Latitude:  lat,
			Longitude: lon,
		})
	}
	return fv
}

// BuildFrameView prepares a frame for the presentation layer.
func BuildFrameView(f simdata.Frame) FrameView {
	return buildFrameView(f)
}
