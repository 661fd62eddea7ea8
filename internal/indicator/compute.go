package indicator

import (
	"fmt"

	"github.com/gamma-omg/ta-signals/internal/market"
	"golang.org/x/sync/errgroup"
)

type Params struct {
	VROCPeriod int
	RSIPeriod  int
	EMAPeriod  int
}

func DefaultParams() Params {
	return Params{
		VROCPeriod: 5,
		RSIPeriod:  14,
		EMAPeriod:  50,
	}
}

// Set holds every indicator computed for one series.
type Set struct {
	VROC Values
	RSI  Values
	VWAP Values
	EMA  Values
}

// Compute runs the transforms concurrently. Each goroutine owns one field of
// the result.
func Compute(s market.Series, p Params) (set Set, err error) {
	var g errgroup.Group

	g.Go(func() error {
		if p.VROCPeriod <= 0 {
			return fmt.Errorf("invalid vroc period %d: %w", p.VROCPeriod, ErrInvalidPeriod)
		}
		set.VROC = VROC(s, p.VROCPeriod)
		return nil
	})
	g.Go(func() error {
		if p.RSIPeriod <= 0 {
			return fmt.Errorf("invalid rsi period %d: %w", p.RSIPeriod, ErrInvalidPeriod)
		}
		set.RSI = RSI(s, p.RSIPeriod)
		return nil
	})
	g.Go(func() error {
		if p.EMAPeriod <= 0 {
			return fmt.Errorf("invalid ema period %d: %w", p.EMAPeriod, ErrInvalidPeriod)
		}
		set.EMA = EMA(s, p.EMAPeriod)
		return nil
	})
	g.Go(func() error {
		set.VWAP = VWAP(s)
		return nil
	})

	if err = g.Wait(); err != nil {
		err = fmt.Errorf("failed to compute indicators: %w", err)
		return Set{}, err
	}

	return
}
