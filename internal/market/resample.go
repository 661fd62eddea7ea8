package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Resample aggregates bars into buckets aligned to interval. A bucket opens at
// its first bar's time and keeps the first open, last close, extreme high/low
// and summed volume. A non-positive interval returns the series unchanged.
// The input is validated first; merging would hide unordered bars.
func Resample(s Series, interval time.Duration) (Series, error) {
	if err := s.Validate(); err != nil {
		return Series{}, fmt.Errorf("failed to resample: %w", err)
	}

	if interval <= 0 {
		return s, nil
	}

	res := Series{Symbol: s.Symbol, Bars: make([]Bar, 0, len(s.Bars))}

	var cur *Bar
	var end time.Time
	for _, b := range s.Bars {
		if cur != nil && !b.Time.Before(end) {
			res.Bars = append(res.Bars, *cur)
			cur = nil
		}

		if cur == nil {
			end = b.Time.Truncate(interval).Add(interval)
			cur = &Bar{
				Time: b.Time,
				Open: b.Open,
				High: b.High,
				Low:  b.Low,
			}
		}

		cur.Close = b.Close
		cur.High = decimal.Max(cur.High, b.High)
		cur.Low = decimal.Min(cur.Low, b.Low)
		cur.Volume = cur.Volume.Add(b.Volume)
	}

	if cur != nil {
		res.Bars = append(res.Bars, *cur)
	}

	return res, nil
}
