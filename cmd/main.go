package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/market"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
	"github.com/gamma-omg/ta-signals/internal/report"
	"github.com/gamma-omg/ta-signals/internal/source"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ta-signals",
		Usage: "compute VROC/RSI/VWAP/EMA signals over a bar series and evaluate the strategy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to the yaml config",
				EnvVars:  []string{"CONFIG"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "symbol",
				Aliases: []string{"s"},
				Usage:   "instrument symbol, overrides the config",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "read bars from this csv file instead of the configured source",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error; overrides the config",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.ReadFromFile(c.String("config"))
	if err != nil {
		return err
	}

	if s := c.String("symbol"); s != "" {
		cfg.Symbol = s
	}
	if path := c.String("csv"); path != "" {
		cfg.SourceRef.Source = config.CSV{Path: path}
	}
	if lvl := c.String("log-level"); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
	}
	if cfg.Symbol == "" {
		return errors.New("symbol is not set")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	src, err := source.Create(logger, cfg.SourceRef)
	if err != nil {
		return fmt.Errorf("failed to create series source: %w", err)
	}

	series, err := src.Load(c.Context, cfg.Symbol)
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}
	series, err = market.Resample(series, cfg.Resample)
	if err != nil {
		return err
	}

	opts, err := pipeline.OptionsFromConfig(*cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(series, opts)
	if err != nil {
		return err
	}

	logger.Info("strategy evaluated",
		slog.String("symbol", cfg.Symbol),
		slog.String("rule", opts.Rule.Name()),
		slog.Int("bars", series.Len()),
		slog.Float64("total_return", res.Summary.TotalReturn),
		slog.Float64("sharpe", res.Summary.Sharpe))

	return report.NewWriter(logger, cfg.Report, os.Stdout).Write(res)
}
