package pipeline

import (
	"errors"
	"fmt"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/gamma-omg/ta-signals/internal/performance"
	"github.com/gamma-omg/ta-signals/internal/signal"
)

type Options struct {
	Params        indicator.Params
	Rule          signal.Rule
	Annualization float64
}

func DefaultOptions() Options {
	return Options{
		Params:        indicator.DefaultParams(),
		Rule:          signal.DefaultVROCRSIRule(),
		Annualization: performance.DefaultAnnualization,
	}
}

type Result struct {
	Series     market.Series
	Rule       signal.Rule
	Indicators indicator.Set
	Signals    signal.Series
	Summary    performance.Summary
}

// Run validates the series and pushes it through the indicator, signal and
// performance stages. The input is never modified.
func Run(s market.Series, opts Options) (res Result, err error) {
	if opts.Rule == nil {
		err = errors.New("no signal rule configured")
		return
	}

	if err = s.Validate(); err != nil {
		err = fmt.Errorf("failed to validate series: %w", err)
		return
	}

	set, err := indicator.Compute(s, opts.Params)
	if err != nil {
		return
	}

	closes := s.Closes()
	signals := signal.Generate(opts.Rule, signal.Inputs{
		Close:      closes,
		Indicators: set,
	})

	res = Result{
		Series:     s,
		Rule:       opts.Rule,
		Indicators: set,
		Signals:    signals,
		Summary:    performance.Evaluate(signals, closes, opts.Annualization),
	}
	return
}
