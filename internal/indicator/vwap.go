package indicator

import "github.com/gamma-omg/ta-signals/internal/market"

// VWAP is the cumulative volume-weighted typical price from the first bar.
// Bars before any volume has traded have no value.
func VWAP(s market.Series) Values {
	res := missing(len(s.Bars))

	var cumPV, cumVol float64
	for i, b := range s.Bars {
		vol, _ := b.Volume.Float64()
		cumPV += b.TypicalPrice() * vol
		cumVol += vol

		if cumVol > 0 {
			res[i] = cumPV / cumVol
		}
	}

	return res
}
