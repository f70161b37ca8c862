package league

import "math"

// RunningAverages turns a chronological sequence of per-match averages into
// the running mean at each match: element i is the mean of values[0..i],
// rounded to two decimal places. Chart consumers plot this directly.
func RunningAverages(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		out[i] = round2(sum / float64(i+1))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
