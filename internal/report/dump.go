package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
)

var dumpHeader = []string{"timestamp", "open", "high", "low", "close", "volume", "vroc", "rsi", "vwap", "ema", "signal"}

// WriteCsv dumps one row per bar. Missing indicator values are empty cells.
func WriteCsv(w io.Writer, res pipeline.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dumpHeader); err != nil {
		return fmt.Errorf("failed to write csv dump header: %w", err)
	}

	for i, bar := range res.Series.Bars {
		err := cw.Write([]string{
			strconv.FormatInt(bar.Time.Unix(), 10),
			bar.Open.String(),
			bar.High.String(),
			bar.Low.String(),
			bar.Close.String(),
			bar.Volume.String(),
			formatValue(res.Indicators.VROC, i),
			formatValue(res.Indicators.RSI, i),
			formatValue(res.Indicators.VWAP, i),
			formatValue(res.Indicators.EMA, i),
			signalAt(res.Signals, i).String(),
		})
		if err != nil {
			return fmt.Errorf("failed to dump bar %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v indicator.Values, i int) string {
	x, ok := v.At(i)
	if !ok {
		return ""
	}

	return strconv.FormatFloat(x, 'f', -1, 64)
}
