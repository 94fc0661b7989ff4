package playback

import (
	"math"

	"github.com/theoremus-urban-solutions/traffic-playback/simdata"
	"github.com/theoremus-urban-solutions/traffic-playback/utils"
)

// RunStatistics aggregates a loaded run for the statistics endpoint.
type RunStatistics struct {
	TotalSteps    int     `json:"total_steps"`
	VehicleCount  int     `json:"vehicle_count"`
	AvgCongestion float64 `json:"avg_congestion"`
	MaxCongestion float64 `json:"max_congestion"`
	MinCongestion float64 `json:"min_congestion"`
	AvgSpeed      float64 `json:"avg_speed"`
	GeneratedAt   string  `json:"generated_at"`
}

// Statistics computes aggregate statistics over a run. A nil or empty run
// yields zero statistics.
func Statistics(run simdata.SimulationRun) RunStatistics {
	stats := RunStatistics{GeneratedAt: utils.Iso8601Now()}
	if len(run) == 0 {
		return stats
	}
	stats.TotalSteps = len(run)
	stats.VehicleCount = len(run[0].Vehicles)

	minC := math.MaxFloat64
	maxC := -math.MaxFloat64
	sumC := 0.0
	sumSpeed := 0.0
	speedSamples := 0
	for _, f := range run {
		sumC += f.Congestion
		if f.Congestion < minC {
			minC = f.Congestion
		}
		if f.Congestion > maxC {
			maxC = f.Congestion
		}
		for _, v := range f.Vehicles {
			sumSpeed += v.Speed
			speedSamples++
		}
	}
	stats.AvgCongestion = round3(sumC / float64(len(run)))
	stats.MaxCongestion = round3(maxC)
	stats.MinCongestion = round3(minC)
	if speedSamples > 0 {
		stats.AvgSpeed = round2(sumSpeed / float64(speedSamples))
	}
	return stats
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
