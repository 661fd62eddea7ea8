package performance

import (
	"fmt"
	"math"
	"testing"

	"github.com/gamma-omg/ta-signals/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	r := Returns([]float64{100, 110, 99})

	require.Len(t, r, 3)
	assert.True(t, r.Missing(0))
	assert.InDelta(t, 0.1, r[1], 1e-12)
	assert.InDelta(t, -0.1, r[2], 1e-12)
}

func TestStrategyReturns(t *testing.T) {
	r := StrategyReturns(
		signal.Series{signal.Buy, signal.Sell, signal.Hold, signal.Buy},
		Returns([]float64{100, 110, 99, 120}),
	)

	require.Len(t, r, 4)
	assert.True(t, r.Missing(0))
	assert.InDelta(t, 0.1, r[1], 1e-12)
	assert.InDelta(t, 0.1, r[2], 1e-12)
	assert.Equal(t, 0.0, r[3])
}

func TestEvaluate(t *testing.T) {
	tbl := []struct {
		closes  []float64
		signals signal.Series
		total   float64
		sharpe  float64
		periods int
		exposed int
	}{
		{
			closes:  []float64{100, 110, 99, 103.95},
			signals: signal.Series{signal.Buy, signal.Buy, signal.Sell, signal.Hold},
			total:   -0.0595,
			sharpe:  -2.5419556372089716,
			periods: 3,
			exposed: 3,
		},
		{
			closes:  []float64{100, 110, 121},
			signals: signal.Series{signal.Buy, signal.Buy, signal.Buy},
			total:   0.21,
			sharpe:  math.NaN(),
			periods: 2,
			exposed: 2,
		},
		{
			closes:  []float64{100, 90, 120, 80},
			signals: signal.Series{signal.Hold, signal.Hold, signal.Hold, signal.Hold},
			total:   0,
			sharpe:  math.NaN(),
			periods: 3,
			exposed: 0,
		},
		{
			closes:  []float64{100},
			signals: signal.Series{signal.Hold},
			total:   0,
			sharpe:  math.NaN(),
			periods: 0,
			exposed: 0,
		},
		{
			closes:  []float64{100, 150},
			signals: signal.Series{signal.Sell, signal.Buy},
			total:   -0.5,
			sharpe:  math.NaN(),
			periods: 1,
			exposed: 1,
		},
	}

	for i, c := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			s := Evaluate(c.signals, c.closes, DefaultAnnualization)

			assert.InDelta(t, c.total, s.TotalReturn, 1e-9)
			if math.IsNaN(c.sharpe) {
				assert.True(t, math.IsNaN(s.Sharpe), "expected NaN sharpe, got %f", s.Sharpe)
			} else {
				assert.InDelta(t, c.sharpe, s.Sharpe, 1e-9)
			}
			assert.Equal(t, c.periods, s.Periods)
			assert.Equal(t, c.exposed, s.Exposed)
		})
	}
}

func TestEvaluate_allHold(t *testing.T) {
	closes := make([]float64, 30)
	signals := make(signal.Series, 30)
	for i := range closes {
		closes[i] = 100 + math.Sin(float64(i))*5
	}

	s := Evaluate(signals, closes, DefaultAnnualization)

	assert.Equal(t, 0.0, s.TotalReturn)
	assert.Equal(t, 0.0, s.MeanReturn)
	assert.Equal(t, 0.0, s.StdDev)
	assert.True(t, math.IsNaN(s.Sharpe))
}

func TestEvaluate_constantGrowth(t *testing.T) {
	closes := make([]float64, 21)
	signals := make(signal.Series, 21)
	closes[0] = 100
	for i := range closes {
		if i > 0 {
			closes[i] = closes[i-1] * 1.01
		}
		signals[i] = signal.Buy
	}

	s := Evaluate(signals, closes, DefaultAnnualization)

	assert.InDelta(t, math.Pow(1.01, 20)-1, s.TotalReturn, 1e-12)
	assert.InDelta(t, 0.01, s.MeanReturn, 1e-12)
	assert.Equal(t, 20, s.Periods)
	assert.True(t, math.IsNaN(s.Sharpe), "expected NaN sharpe, got %f", s.Sharpe)
}

func TestSharpe(t *testing.T) {
	tbl := []struct {
		mean   float64
		stddev float64
		ann    float64
		nan    bool
	}{
		{mean: 0.01, stddev: 0.02, ann: 252},
		{mean: -0.01, stddev: 0.02, ann: 252},
		{mean: 0.01, stddev: 0, ann: 252, nan: true},
		{mean: 0.01, stddev: 3.87e-17, ann: 252, nan: true},
		{mean: 0, stddev: 0, ann: 252, nan: true},
		{mean: 0.01, stddev: math.NaN(), ann: 252, nan: true},
		{mean: 0.01, stddev: 0.02, ann: 0, nan: true},
	}

	for i, c := range tbl {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			v := sharpe(c.mean, c.stddev, c.ann)
			if c.nan {
				assert.True(t, math.IsNaN(v))
				return
			}

			assert.InDelta(t, c.mean/c.stddev*math.Sqrt(c.ann), v, 1e-12)
		})
	}
}

func TestEvaluate_annualization(t *testing.T) {
	closes := []float64{100, 110, 99, 103.95}
	signals := signal.Series{signal.Buy, signal.Buy, signal.Sell, signal.Hold}

	daily := Evaluate(signals, closes, 252)
	weekly := Evaluate(signals, closes, 52)

	assert.InDelta(t, daily.Sharpe/math.Sqrt(252), weekly.Sharpe/math.Sqrt(52), 1e-12)
	assert.True(t, math.IsNaN(Evaluate(signals, closes, 0).Sharpe))
}
