package indicator

import (
	"math"

	"github.com/gamma-omg/ta-signals/internal/market"
)

// RSI uses simple trailing means of gains and losses over the last period
// close-to-close deltas. The first value is at index period.
func RSI(s market.Series, period int) Values {
	closes := s.Closes()
	n := len(closes)
	res := missing(n)
	if period <= 0 || n <= period {
		return res
	}

	g, l := gainsLosses(closes)
	for i := period; i < n; i++ {
		avgG := mean(g[i-period+1 : i+1])
		avgL := mean(l[i-period+1 : i+1])
		res[i] = rsi(avgG, avgL)
	}

	return res
}

// gainsLosses splits close-to-close deltas into gains and losses. Index 0 has
// no delta and stays zero; it is never inside an RSI window.
func gainsLosses(closes []float64) (gains, losses []float64) {
	gains = make([]float64, len(closes))
	losses = make([]float64, len(closes))

	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains[i] = diff
		} else {
			losses[i] = -diff
		}
	}

	return
}

func rsi(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return math.NaN()
		}
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
