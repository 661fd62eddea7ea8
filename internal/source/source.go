package source

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/market"
)

// Loader supplies the series for one instrument.
type Loader interface {
	Load(ctx context.Context, symbol string) (market.Series, error)
}

func Create(log *slog.Logger, ref config.SourceReference) (Loader, error) {
	csvCfg, ok := ref.Source.(config.CSV)
	if ok {
		return NewCsvLoader(log, csvCfg), nil
	}

	alpacaCfg, ok := ref.Source.(config.Alpaca)
	if ok {
		return NewAlpacaLoader(log, alpacaCfg)
	}

	return nil, errors.New("unknown series source")
}
