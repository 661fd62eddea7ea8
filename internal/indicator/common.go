package indicator

import (
	"errors"
	"math"
)

var ErrInvalidPeriod = errors.New("period must be positive")

// Values is an indicator series aligned index-for-index with its input bars.
// Positions without enough history hold NaN.
type Values []float64

func missing(n int) Values {
	v := make(Values, n)
	for i := range v {
		v[i] = math.NaN()
	}

	return v
}

// Missing reports whether there is no usable value at i. Infinities count as
// missing.
func (v Values) Missing(i int) bool {
	if i < 0 || i >= len(v) {
		return true
	}

	return math.IsNaN(v[i]) || math.IsInf(v[i], 0)
}

// Defined returns the number of usable values.
func (v Values) Defined() int {
	n := 0
	for i := range v {
		if !v.Missing(i) {
			n++
		}
	}

	return n
}

// At returns the value at i and whether it is usable.
func (v Values) At(i int) (float64, bool) {
	if v.Missing(i) {
		return math.NaN(), false
	}

	return v[i], true
}

func mean(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}

	return sum / float64(len(data))
}

func ema(data []float64, period int) Values {
	res := missing(len(data))
	if period <= 0 || len(data) < period {
		return res
	}

	res[period-1] = mean(data[:period])

	a := 2.0 / (float64(period) + 1)
	for i := period; i < len(data); i++ {
		res[i] = data[i]*a + res[i-1]*(1-a)
	}

	return res
}
