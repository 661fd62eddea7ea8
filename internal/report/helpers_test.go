package report

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/gamma-omg/ta-signals/internal/performance"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
	"github.com/gamma-omg/ta-signals/internal/signal"
	"github.com/shopspring/decimal"
)

func testBar(day int, c, v int64) market.Bar {
	return market.Bar{
		Time:   time.Date(2024, 1, 2+day, 0, 0, 0, 0, time.UTC),
		Open:   decimal.NewFromInt(c),
		High:   decimal.NewFromInt(c + 1),
		Low:    decimal.NewFromInt(c - 1),
		Close:  decimal.NewFromInt(c),
		Volume: decimal.NewFromInt(v),
	}
}

func testResult() pipeline.Result {
	nan := math.NaN()
	return pipeline.Result{
		Series: market.NewSeries("AAPL", []market.Bar{
			testBar(0, 100, 1000),
			testBar(1, 110, 1500),
		}),
		Rule: signal.DefaultVROCRSIRule(),
		Indicators: indicator.Set{
			VROC: indicator.Values{nan, 50},
			RSI:  indicator.Values{nan, 100},
			VWAP: indicator.Values{100, 106},
			EMA:  indicator.Values{nan, nan},
		},
		Signals: signal.Series{signal.Buy, signal.Hold},
		Summary: performance.Summary{
			TotalReturn: 0.1,
			Sharpe:      nan,
			MeanReturn:  0.1,
			StdDev:      nan,
			Periods:     1,
			Exposed:     1,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
