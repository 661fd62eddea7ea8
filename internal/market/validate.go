package market

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySeries      = errors.New("series has no bars")
	ErrUnordered        = errors.New("bar timestamps are not strictly increasing")
	ErrNegativeVolume   = errors.New("negative volume")
	ErrNonPositivePrice = errors.New("non-positive price")
)

// Validate checks the series before any indicator is computed. Indicators
// assume a validated series and never re-check ordering.
func (s Series) Validate() error {
	if len(s.Bars) == 0 {
		return fmt.Errorf("invalid series %q: %w", s.Symbol, ErrEmptySeries)
	}

	var prev time.Time
	for i, b := range s.Bars {
		if i > 0 && !b.Time.After(prev) {
			return fmt.Errorf("invalid bar %d at %s: %w (previous %s)", i, b.Time.Format(time.RFC3339), ErrUnordered, prev.Format(time.RFC3339))
		}
		prev = b.Time

		if b.Volume.IsNegative() {
			return fmt.Errorf("invalid bar %d at %s: %w: %s", i, b.Time.Format(time.RFC3339), ErrNegativeVolume, b.Volume)
		}

		prices := map[string]decimal.Decimal{"open": b.Open, "high": b.High, "low": b.Low, "close": b.Close}
		for _, name := range []string{"open", "high", "low", "close"} {
			if !prices[name].IsPositive() {
				return fmt.Errorf("invalid bar %d at %s: %w: %s=%s", i, b.Time.Format(time.RFC3339), ErrNonPositivePrice, name, prices[name])
			}
		}
	}

	return nil
}
