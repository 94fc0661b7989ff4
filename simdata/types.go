package simdata

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Vehicle is a single vehicle's state within one frame.
type Vehicle struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

// Frame is one simulated time step's full state.
type Frame struct {
	Step       int       `json:"step"`
	Timestamp  string    `json:"timestamp"`
	Vehicles   []Vehicle `json:"vehicles"`
	Congestion float64   `json:"congestion"`
}

// SimulationRun is the ordered sequence of frames loaded for one session.
// Insertion order is chronological order; frames are indexable by step.
type SimulationRun []Frame

// EmptyFrame returns the placeholder frame used when no run is loaded.
func EmptyFrame() Frame {
	return Frame{Timestamp: "N/A", Vehicles: []Vehicle{}, Congestion: 0}
}

// vehicleDoc matches both the canonical vehicle record and the simulator's
// compressed form where speed is stored under "s".
type vehicleDoc struct {
	ID    any      `json:"id"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Speed *float64 `json:"speed"`
	S     *float64 `json:"s"`
}

// UnmarshalJSON decodes a vehicle record. The simulator emits numeric IDs;
// they are normalized to strings.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var doc vehicleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	v.ID = normalizeID(doc.ID)
	v.X = doc.X
	v.Y = doc.Y
	switch {
	case doc.Speed != nil:
		v.Speed = *doc.Speed
	case doc.S != nil:
		v.Speed = *doc.S
	default:
		v.Speed = 0
	}
	return nil
}

func normalizeID(id any) string {
	switch t := id.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// frameDoc matches both the canonical frame shape and the simulator's
// original field names.
type frameDoc struct {
	Step             int       `json:"step"`
	Timestamp        string    `json:"timestamp"`
	Vehicles         []Vehicle `json:"vehicles"`
	Veiculos         []Vehicle `json:"veiculos"`
	Congestion       *float64  `json:"congestion"`
	Congestionamento *float64  `json:"congestionamento"`
}

// UnmarshalJSON decodes a frame. Missing vehicles default to an empty slice
// and missing congestion defaults to 0. Congestion values outside [0,1] are
// passed through unvalidated.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var doc frameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	f.Step = doc.Step
	f.Timestamp = doc.Timestamp
	switch {
	case doc.Vehicles != nil:
		f.Vehicles = doc.Vehicles
	case doc.Veiculos != nil:
		f.Vehicles = doc.Veiculos
	default:
		f.Vehicles = []Vehicle{}
	}
	switch {
	case doc.Congestion != nil:
		f.Congestion = *doc.Congestion
	case doc.Congestionamento != nil:
		f.Congestion = *doc.Congestionamento
	default:
		f.Congestion = 0
	}
	return nil
}

// ParseRun decodes a result document into a SimulationRun.
func ParseRun(data []byte) (SimulationRun, error) {
	var run SimulationRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, err
	}
	return run, nil
}
