package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// InversionSeries returns the inversion count after each of the first upto+1
// steps. A negative upto or one past the end covers the whole trace.
func InversionSeries(steps []sorting.Step, upto int) []float64 {
	if upto < 0 || upto >= len(steps) {
		upto = len(steps) - 1
	}
	out := make([]float64, 0, upto+1)
	for _, s := range steps[:upto+1] {
		out = append(out, float64(Count(s.Snapshot)))
	}
	return out
}

// Downsample keeps at most width points, picking evenly spaced samples and
// always keeping the last one.
func Downsample(data []float64, width int) []float64 {
	if width <= 0 || len(data) <= width {
		return data
	}
	if width == 1 {
		return data[len(data)-1:]
	}
	out := make([]float64, width)
	step := float64(len(data)-1) / float64(width-1)
	for i := range out {
		out[i] = data[int(float64(i)*step+0.5)]
	}
	return out
}
