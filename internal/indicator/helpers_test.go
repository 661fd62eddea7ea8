package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func closeSeries(closes ...float64) market.Series {
	volumes := make([]float64, len(closes))
	for i := range volumes {
		volumes[i] = 1000
	}

	return ohlcvSeries(closes, volumes)
}

func volumeSeries(volumes ...float64) market.Series {
	closes := make([]float64, len(volumes))
	for i := range closes {
		closes[i] = 100
	}

	return ohlcvSeries(closes, volumes)
}

func ohlcvSeries(closes, volumes []float64) market.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   decimal.NewFromFloat(c),
			High:   decimal.NewFromFloat(c),
			Low:    decimal.NewFromFloat(c),
			Close:  decimal.NewFromFloat(c),
			Volume: decimal.NewFromFloat(volumes[i]),
		}
	}

	return market.NewSeries("TEST", bars)
}

// wave is a deterministic price path with both gains and losses in any window
// longer than ten bars.
func wave(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = 100 + 10*math.Sin(float64(i)*0.7) + float64(i)*0.1
	}

	return data
}

func requireSameValues(t *testing.T, expected, actual Values) {
	t.Helper()

	require.Len(t, actual, len(expected))
	for i := range expected {
		require.Equal(t, math.Float64bits(expected[i]), math.Float64bits(actual[i]), "value at %d", i)
	}
}
