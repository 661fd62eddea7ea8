package source

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/shopspring/decimal"
)

type barFilter func(b market.Bar) bool

// CsvLoader reads bars from a file with a header row and the columns
// timestamp,open,high,low,close,volume. Timestamps are unix seconds.
type CsvLoader struct {
	log    *slog.Logger
	path   string
	filter barFilter
}

func NewCsvLoader(log *slog.Logger, cfg config.CSV) *CsvLoader {
	return &CsvLoader{
		log:    log,
		path:   cfg.Path,
		filter: timeRange(cfg.Start, cfg.End),
	}
}

// timeRange keeps bars in [start, end). Zero bounds are open.
func timeRange(start, end time.Time) barFilter {
	return func(b market.Bar) bool {
		if !start.IsZero() && b.Time.Before(start) {
			return false
		}
		if !end.IsZero() && !b.Time.Before(end) {
			return false
		}
		return true
	}
}

func (l *CsvLoader) Load(ctx context.Context, symbol string) (s market.Series, err error) {
	f, err := os.Open(l.path)
	if err != nil {
		return s, fmt.Errorf("unable to open bars file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close bars file: %w", cerr))
		}
	}()

	bars, err := readBars(ctx, bufio.NewReader(f), l.filter)
	if err != nil {
		return s, fmt.Errorf("failed to read %s: %w", l.path, err)
	}

	l.log.Debug("bars loaded", slog.String("symbol", symbol), slog.String("path", l.path), slog.Int("count", len(bars)))
	return market.NewSeries(symbol, bars), nil
}

func readBars(ctx context.Context, r io.Reader, filter barFilter) ([]market.Bar, error) {
	rdr := csv.NewReader(r)
	if _, err := rdr.Read(); err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var bars []market.Bar
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read bar data: %w", err)
		}

		bar, err := parseBar(data)
		if err != nil {
			line, _ := rdr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if filter(bar) {
			bars = append(bars, bar)
		}
	}

	return bars, nil
}

func parseBar(data []string) (market.Bar, error) {
	if len(data) < 6 {
		return market.Bar{}, fmt.Errorf("expected 6 columns, got %d", len(data))
	}

	timestamp, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return market.Bar{}, fmt.Errorf("failed to parse bar time: %w", err)
	}

	values := make([]decimal.Decimal, 5)
	for i, name := range []string{"open", "high", "low", "close", "volume"} {
		values[i], err = decimal.NewFromString(data[i+1])
		if err != nil {
			return market.Bar{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}

	return market.Bar{
		Time:   time.Unix(int64(timestamp), 0).UTC(),
		Open:   values[0],
		High:   values[1],
		Low:    values[2],
		Close:  values[3],
		Volume: values[4],
	}, nil
}
