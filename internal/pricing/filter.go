package pricing

import "math"

// DefaultMultiplier is the width of the upper band in standard deviations.
const DefaultMultiplier = 2.0

// BandPoint is the filter output for one input position.
//
// Defined is false for positions at the start of the series where the window is not yet full;
// Mid and Upper are meaningless in that case.
type BandPoint struct {
	Mid     float64
	Upper   float64
	Defined bool
}

// Filter is a moving-window smoothing filter producing one BandPoint per input value.
type Filter interface {
	Bands(values []float64, window int) []BandPoint
}

// BollingerFilter computes a simple moving average (mid) and mid + Multiplier * population
// standard deviation (upper) over each full window.
type BollingerFilter struct {
	Multiplier float64
}

// NewBollingerFilter returns the conventional 2-sigma Bollinger filter.
func NewBollingerFilter() BollingerFilter {
	return BollingerFilter{Multiplier: DefaultMultiplier}
}

// Bands implements Filter. A window below 1 is treated as 1.
func (f BollingerFilter) Bands(values []float64, window int) []BandPoint {
	if window < 1 {
		window = 1
	}

	out := make([]BandPoint, len(values))
	for i := window - 1; i < len(values); i++ {
		mean, sd := meanStdDev(values[i-window+1 : i+1])
		out[i] = BandPoint{
			Mid:     mean,
			Upper:   mean + f.Multiplier*sd,
			Defined: true,
		}
	}
	return out
}

func meanStdDev(window []float64) (float64, float64) {
	n := float64(len(window))

	var sum float64
	for _, v := range window {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range window {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / n)
}
