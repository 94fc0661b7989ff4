package playback

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
)

func TestBuildFrameView_ProjectsVehicles(t *testing.T) {
	f := simdata.Frame{
		Timestamp:  "2026-08-30T12:00:00Z",
		Congestion: 0.5,
		Vehicles:   []simdata.Vehicle{{ID: "7", X: 1, Y: 2, Speed: 3}},
	}

	fv := BuildFrameView(f)
	if len(fv.Vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(fv.Vehicles))
	}
	v := fv.Vehicles[0]
	if math.Abs(v.Latitude-51.7) > 1e-9 {
		t.Errorf("expected latitude 51.7, got %g", v.Latitude)
	}
	if math.Abs(v.Longitude-0.0) > 1e-9 {
		t.Errorf("expected longitude 0.0, got %g", v.Longitude)
	}
	if v.X != 1 || v.Y != 2 || v.Speed != 3 || v.ID != "7" {
		t.Errorf("raw vehicle fields should be preserved, got %+v", v)
	}
}

func TestBuildFrameView_SentinelFrame(t *testing.T) {
	fv := BuildFrameView(simdata.EmptyFrame())
	if fv.Timestamp != "N/A" {
		t.Errorf("expected N/A timestamp, got %q", fv.Timestamp)
	}
	if fv.Vehicles == nil || len(fv.Vehicles) != 0 {
		t.Errorf("sentinel view should have an empty vehicle list, got %v", fv.Vehicles)
	}
	if fv.Congestion != 0 {
		t.Errorf("sentinel congestion should be 0, got %g", fv.Congestion)
	}
}
