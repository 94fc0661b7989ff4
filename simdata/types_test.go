package simdata

import (
	"testing"
)

func TestParseRun_CanonicalDocument(t *testing.T) {
	doc := `[
		{"step": 0, "timestamp": "2026-08-30T00:00:00", "vehicles": [{"id": 1, "x": 3, "y": 4, "speed": 2}], "congestion": 0.12},
		{"step": 1, "timestamp": "2026-08-30T00:00:01", "vehicles": [{"id": 1, "x": 4, "y": 4, "speed": 3}], "congestion": 0.15}
	]`

	run, err := ParseRun([]byte(doc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(run) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(run))
	}
	f := run[0]
	if f.Congestion != 0.12 || f.Timestamp != "2026-08-30T00:00:00" {
		t.Errorf("unexpected frame: %+v", f)
	}
	if len(f.Vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(f.Vehicles))
	}
	v := f.Vehicles[0]
	if v.ID != "1" || v.X != 3 || v.Y != 4 || v.Speed != 2 {
		t.Errorf("unexpected vehicle: %+v", v)
	}
}

func TestParseRun_TolerantDecoding(t *testing.T) {
	tests := []struct {
		name           string
		doc            string
		wantVehicles   int
		wantSpeed      float64
		wantCongestion float64
	}{
		{
			name:           "missing vehicles defaults to empty",
			doc:            `[{"timestamp": "t", "congestion": 0.3}]`,
			wantVehicles:   0,
			wantCongestion: 0.3,
		},
		{
			name:         "missing congestion defaults to zero",
			doc:          `[{"timestamp": "t", "vehicles": [{"id": "a", "x": 1, "y": 1, "speed": 4}]}]`,
			wantVehicles: 1,
			wantSpeed:    4,
		},
		{
			name:           "compressed speed key",
			doc:            `[{"timestamp": "t", "vehicles": [{"id": 2, "x": 1, "y": 1, "s": 5}], "congestion": 0.2}]`,
			wantVehicles:   1,
			wantSpeed:      5,
			wantCongestion: 0.2,
		},
		{
			name:           "simulator field names",
			doc:            `[{"timestamp": "t", "veiculos": [{"id": 2, "x": 1, "y": 1, "speed": 5}], "congestionamento": 0.7}]`,
			wantVehicles:   1,
			wantSpeed:      5,
			wantCongestion: 0.7,
		},
		{
			name:           "congestion above one passes through",
			doc:            `[{"timestamp": "t", "congestion": 1.8}]`,
			wantVehicles:   0,
			wantCongestion: 1.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := ParseRun([]byte(tt.doc))
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if len(run) != 1 {
				t.Fatalf("expected 1 frame, got %d", len(run))
			}
			f := run[0]
			if f.Vehicles == nil {
				t.Fatal("vehicles must never be nil")
			}
			if len(f.Vehicles) != tt.wantVehicles {
				t.Fatalf("expected %d vehicles, got %d", tt.wantVehicles, len(f.Vehicles))
			}
			if f.Congestion != tt.wantCongestion {
				t.Errorf("expected congestion %g, got %g", tt.wantCongestion, f.Congestion)
			}
			if tt.wantVehicles > 0 && f.Vehicles[0].Speed != tt.wantSpeed {
				t.Errorf("expected speed %g, got %g", tt.wantSpeed, f.Vehicles[0].Speed)
			}
		})
	}
}

func TestParseRun_Malformed(t *testing.T) {
	for _, doc := range []string{`{`, `{"not": "an array"}`, `[{"vehicles": "nope"}]`} {
		if _, err := ParseRun([]byte(doc)); err == nil {
			t.Errorf("expected parse error for %q", doc)
		}
	}
}

func TestEmptyFrame(t *testing.T) {
	f := EmptyFrame()
	if f.Timestamp != "N/A" {
		t.Errorf("expected N/A timestamp, got %q", f.Timestamp)
	}
	if f.Vehicles == nil || len(f.Vehicles) != 0 {
		t.Errorf("expected empty vehicle slice, got %v", f.Vehicles)
	}
	if f.Congestion != 0 {
		t.Errorf("expected congestion 0, got %g", f.Congestion)
	}
}
