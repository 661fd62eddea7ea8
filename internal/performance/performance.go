package performance

import (
	"math"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/signal"
	"gonum.org/v1/gonum/stat"
)

const DefaultAnnualization = 252

type Summary struct {
	TotalReturn float64
	Sharpe      float64
	MeanReturn  float64
	StdDev      float64
	// Periods is the number of bars with a defined strategy return.
	Periods int
	// Exposed is the number of those bars where a position was held.
	Exposed int
}

// Returns computes close-to-close simple returns. The first bar has none.
func Returns(closes []float64) indicator.Values {
	res := make(indicator.Values, len(closes))
	for i := range res {
		if i == 0 {
			res[i] = math.NaN()
			continue
		}

		res[i] = (closes[i] - closes[i-1]) / closes[i-1]
	}

	return res
}

// StrategyReturns applies the position decided at the close of bar i-1 to the
// return of bar i.
func StrategyReturns(signals signal.Series, returns indicator.Values) indicator.Values {
	n := min(len(signals), len(returns))
	res := make(indicator.Values, n)
	for i := range res {
		if i == 0 || returns.Missing(i) {
			res[i] = math.NaN()
			continue
		}

		res[i] = signals[i-1].Position() * returns[i]
	}

	return res
}

// Evaluate summarizes the strategy. Bars without a strategy return are left
// out of both the compounded total and the Sharpe statistics.
func Evaluate(signals signal.Series, closes []float64, annualization float64) Summary {
	strat := StrategyReturns(signals, Returns(closes))

	defined := make([]float64, 0, len(strat))
	s := Summary{Sharpe: math.NaN(), MeanReturn: math.NaN(), StdDev: math.NaN()}

	growth := 1.0
	for i, r := range strat {
		if strat.Missing(i) {
			continue
		}

		growth *= 1 + r
		defined = append(defined, r)
		if signals[i-1] != signal.Hold {
			s.Exposed++
		}
	}

	s.Periods = len(defined)
	s.TotalReturn = growth - 1
	if s.Periods == 0 {
		return s
	}

	s.MeanReturn = stat.Mean(defined, nil)
	if s.Periods < 2 {
		return s
	}

	s.StdDev = stat.StdDev(defined, nil)
	s.Sharpe = sharpe(s.MeanReturn, s.StdDev, annualization)
	return s
}

// flatTolerance is the relative spread below which returns count as constant.
const flatTolerance = 1e-12

// sharpe is undefined for a flat return series, including one that is only
// non-constant through float rounding.
func sharpe(mean, stddev, annualization float64) float64 {
	if math.IsNaN(stddev) || stddev <= flatTolerance*math.Abs(mean) || annualization <= 0 {
		return math.NaN()
	}

	return mean / stddev * math.Sqrt(annualization)
}
