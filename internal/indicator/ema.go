package indicator

import "github.com/gamma-omg/ta-signals/internal/market"

// EMA is the exponential moving average of close with smoothing 2/(p+1),
// seeded at index p-1 by the simple mean of the first p closes.
func EMA(s market.Series, period int) Values {
	return ema(s.Closes(), period)
}
