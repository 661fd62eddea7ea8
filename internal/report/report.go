package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
)

const (
	chartWidth  = 1200
	chartHeight = 250
)

// Writer renders a pipeline result to every output named in the config.
type Writer struct {
	log *slog.Logger
	cfg config.Report
	out io.Writer
}

func NewWriter(log *slog.Logger, cfg config.Report, out io.Writer) *Writer {
	return &Writer{log: log, cfg: cfg, out: out}
}

func (w *Writer) Write(res pipeline.Result) error {
	var errs []error

	if w.cfg.Json != "" {
		if err := writeFile(w.cfg.Json, func(f io.Writer) error { return WriteJson(f, res) }); err != nil {
			errs = append(errs, err)
		} else {
			w.log.Info("json report written", slog.String("path", w.cfg.Json))
		}
	}

	if w.cfg.Csv != "" {
		if err := writeFile(w.cfg.Csv, func(f io.Writer) error { return WriteCsv(f, res) }); err != nil {
			errs = append(errs, err)
		} else {
			w.log.Info("csv dump written", slog.String("path", w.cfg.Csv))
		}
	}

	if w.cfg.Chart != "" {
		c := NewChart(chartWidth, chartHeight)
		if err := c.Draw(res); err != nil {
			errs = append(errs, fmt.Errorf("failed to draw chart: %w", err))
		} else if err := c.Save(w.cfg.Chart); err != nil {
			errs = append(errs, err)
		} else {
			w.log.Info("chart written", slog.String("path", w.cfg.Chart))
		}
	}

	if w.cfg.Table && w.out != nil {
		WriteTable(w.out, res)
	}

	return errors.Join(errs...)
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	return write(f)
}
