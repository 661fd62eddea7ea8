package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
	"github.com/gamma-omg/ta-signals/internal/signal"
)

type JsonReport struct {
	Symbol  string      `json:"symbol"`
	Rule    string      `json:"rule"`
	Summary JsonSummary `json:"summary"`
	Bars    []JsonBar   `json:"bars,omitempty"`
}

// JsonSummary uses null for statistics that are undefined.
type JsonSummary struct {
	TotalReturn float64  `json:"total_return"`
	Sharpe      *float64 `json:"sharpe"`
	MeanReturn  *float64 `json:"mean_return"`
	StdDev      *float64 `json:"std_dev"`
	Periods     int      `json:"periods"`
	Exposed     int      `json:"exposed"`
	Buys        int      `json:"buys"`
	Sells       int      `json:"sells"`
}

type JsonBar struct {
	Time   time.Time     `json:"time"`
	Close  string        `json:"close"`
	Volume string        `json:"volume"`
	VROC   *float64      `json:"vroc"`
	RSI    *float64      `json:"rsi"`
	VWAP   *float64      `json:"vwap"`
	EMA    *float64      `json:"ema"`
	Signal signal.Signal `json:"signal"`
}

func NewJsonReport(res pipeline.Result) JsonReport {
	r := JsonReport{
		Symbol: res.Series.Symbol,
		Rule:   ruleName(res.Rule),
		Summary: JsonSummary{
			TotalReturn: res.Summary.TotalReturn,
			Sharpe:      nullable(res.Summary.Sharpe),
			MeanReturn:  nullable(res.Summary.MeanReturn),
			StdDev:      nullable(res.Summary.StdDev),
			Periods:     res.Summary.Periods,
			Exposed:     res.Summary.Exposed,
			Buys:        res.Signals.Count(signal.Buy),
			Sells:       res.Signals.Count(signal.Sell),
		},
		Bars: make([]JsonBar, len(res.Series.Bars)),
	}

	for i, b := range res.Series.Bars {
		r.Bars[i] = JsonBar{
			Time:   b.Time,
			Close:  b.Close.String(),
			Volume: b.Volume.String(),
			VROC:   nullableAt(res.Indicators.VROC, i),
			RSI:    nullableAt(res.Indicators.RSI, i),
			VWAP:   nullableAt(res.Indicators.VWAP, i),
			EMA:    nullableAt(res.Indicators.EMA, i),
			Signal: signalAt(res.Signals, i),
		}
	}

	return r
}

func WriteJson(w io.Writer, res pipeline.Result) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(NewJsonReport(res)); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}

	return nil
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func nullableAt(v indicator.Values, i int) *float64 {
	x, ok := v.At(i)
	if !ok {
		return nil
	}

	return &x
}

func signalAt(s signal.Series, i int) signal.Signal {
	if i < len(s) {
		return s[i]
	}

	return signal.Hold
}

func ruleName(r signal.Rule) string {
	if r == nil {
		return ""
	}

	return r.Name()
}
