package meshdiag

import "github.com/montanaflynn/stats"

// distributionStatsOf computes {min, max, mean, median, stdDev} over a
// non-empty sample. Returns nil for an empty sample.
func distributionStatsOf(samples []float64) *DistributionStats {
	if len(samples) == 0 {
		return nil
	}
	data := stats.Float64Data(samples)

	min, _ := data.Min()
	max, _ := data.Max()
	mean, _ := data.Mean()
	med, _ := data.Median()
	stdDev, _ := data.StandardDeviation()

	return &DistributionStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: med,
		StdDev: stdDev,
	}
}
