package optics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ScanSummary describes one sweep.
type ScanSummary struct {
	Rays     int
	Returns  int
	Coverage float64
	MinRange float64
	MaxRange float64
	Mean     float64
	StdDev   float64
}

// Summarize computes return statistics for a scan made with s.
func Summarize(s Sensor, measurements []Measurement) ScanSummary {
	summary := ScanSummary{Rays: s.Resolution, Returns: len(measurements)}
	if s.Resolution > 0 {
		summary.Coverage = float64(len(measurements)) / float64(s.Resolution)
	}
	if len(measurements) == 0 {
		return summary
	}

	ranges := make([]float64, len(measurements))
	summary.MinRange = math.Inf(1)
	summary.MaxRange = math.Inf(-1)
	for i, m := range measurements {
		ranges[i] = m.Distance
		summary.MinRange = math.Min(summary.MinRange, m.Distance)
		summary.MaxRange = math.Max(summary.MaxRange, m.Distance)
	}
	summary.Mean = stat.Mean(ranges, nil)
	if len(ranges) > 1 {
		summary.StdDev = stat.StdDev(ranges, nil)
	}
	return summary
}
