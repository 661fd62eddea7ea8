package source

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/shopspring/decimal"
)

type barsApi interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaLoader fetches historical stock bars from the Alpaca market data API.
type AlpacaLoader struct {
	log       *slog.Logger
	api       barsApi
	timeframe marketdata.TimeFrame
	cfg       config.Alpaca
}

func NewAlpacaLoader(log *slog.Logger, cfg config.Alpaca) (*AlpacaLoader, error) {
	tf, err := parseTimeframe(cfg.Timeframe)
	if err != nil {
		return nil, fmt.Errorf("invalid alpaca timeframe: %w", err)
	}

	c := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   cfg.BaseUrl,
		APIKey:    cfg.ApiKey,
		APISecret: cfg.Secret,
	})

	return &AlpacaLoader{
		log:       log,
		api:       c,
		timeframe: tf,
		cfg:       cfg,
	}, nil
}

func (l *AlpacaLoader) Load(ctx context.Context, symbol string) (market.Series, error) {
	if err := ctx.Err(); err != nil {
		return market.Series{}, err
	}

	req := marketdata.GetBarsRequest{
		TimeFrame:  l.timeframe,
		Adjustment: marketdata.Split,
		Start:      l.cfg.Start,
		End:        l.cfg.End,
		Feed:       marketdata.Feed(l.cfg.Feed),
	}

	history, err := l.api.GetBars(symbol, req)
	if err != nil {
		return market.Series{}, fmt.Errorf("failed to get %s bars from alpaca: %w", symbol, err)
	}

	bars := make([]market.Bar, len(history))
	for i, b := range history {
		bars[i] = market.Bar{
			Time:   b.Timestamp,
			Open:   decimal.NewFromFloat(b.Open),
			High:   decimal.NewFromFloat(b.High),
			Low:    decimal.NewFromFloat(b.Low),
			Close:  decimal.NewFromFloat(b.Close),
			Volume: decimal.NewFromInt(int64(b.Volume)),
		}
	}

	l.log.Debug("bars fetched", slog.String("symbol", symbol), slog.String("timeframe", l.timeframe.String()), slog.Int("count", len(bars)))
	return market.NewSeries(symbol, bars), nil
}

// parseTimeframe accepts values like 5Min, 1Hour, 1Day, 1Week, 1Month.
func parseTimeframe(s string) (marketdata.TimeFrame, error) {
	i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if i <= 0 {
		return marketdata.TimeFrame{}, fmt.Errorf("malformed timeframe %q", s)
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil || n <= 0 {
		return marketdata.TimeFrame{}, fmt.Errorf("malformed timeframe %q", s)
	}

	units := map[string]marketdata.TimeFrameUnit{
		"Min":   marketdata.Min,
		"Hour":  marketdata.Hour,
		"Day":   marketdata.Day,
		"Week":  marketdata.Week,
		"Month": marketdata.Month,
	}
	unit, ok := units[s[i:]]
	if !ok {
		return marketdata.TimeFrame{}, fmt.Errorf("unknown timeframe unit in %q", s)
	}

	return marketdata.NewTimeFrame(n, unit), nil
}
