package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Symbol        string          `yaml:"symbol"`
	Indicators    Indicators      `yaml:"indicators"`
	RuleRef       RuleReference   `yaml:"rule"`
	Annualization float64         `yaml:"annualization"`
	Resample      time.Duration   `yaml:"resample"`
	SourceRef     SourceReference `yaml:"source"`
	Report        Report          `yaml:"report"`
	LogLevel      slog.Level      `yaml:"log_level"`
}

type Indicators struct {
	VROCPeriod int `yaml:"vroc_period"`
	RSIPeriod  int `yaml:"rsi_period"`
	EMAPeriod  int `yaml:"ema_period"`
}

type Report struct {
	Json  string `yaml:"json"`
	Csv   string `yaml:"csv"`
	Chart string `yaml:"chart"`
	Table bool   `yaml:"table"`
}

// Default returns the documented defaults. Read decodes on top of them, so
// anything a file leaves out keeps its default.
func Default() Config {
	return Config{
		Indicators: Indicators{
			VROCPeriod: 5,
			RSIPeriod:  14,
			EMAPeriod:  50,
		},
		RuleRef:       RuleReference{Rule: DefaultVROCRSI()},
		Annualization: 252,
		Report:        Report{Table: true},
		LogLevel:      slog.LevelInfo,
	}
}

func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	d := yaml.NewDecoder(r)
	err := d.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func ReadFromFile(path string) (cfg *Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close config file: %w", cerr))
		}
	}()

	return Read(f)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Indicators.VROCPeriod <= 0 {
		errs = append(errs, fmt.Errorf("vroc_period must be positive, got %d", c.Indicators.VROCPeriod))
	}
	if c.Indicators.RSIPeriod <= 0 {
		errs = append(errs, fmt.Errorf("rsi_period must be positive, got %d", c.Indicators.RSIPeriod))
	}
	if c.Indicators.EMAPeriod <= 0 {
		errs = append(errs, fmt.Errorf("ema_period must be positive, got %d", c.Indicators.EMAPeriod))
	}
	if c.Annualization <= 0 {
		errs = append(errs, fmt.Errorf("annualization must be positive, got %v", c.Annualization))
	}
	if c.Resample < 0 {
		errs = append(errs, fmt.Errorf("resample must not be negative, got %s", c.Resample))
	}
	if c.RuleRef.Rule == nil {
		errs = append(errs, errors.New("signal rule is not set"))
	}

	return errors.Join(errs...)
}

// rule configs

type VROCRSI struct {
	VROCBuy  float64 `yaml:"vroc_buy"`
	VROCSell float64 `yaml:"vroc_sell"`
	RSIBuy   float64 `yaml:"rsi_buy"`
	RSISell  float64 `yaml:"rsi_sell"`
}

func DefaultVROCRSI() VROCRSI {
	return VROCRSI{
		VROCBuy:  20,
		VROCSell: -20,
		RSIBuy:   30,
		RSISell:  70,
	}
}

// VWAPEMARSI has fixed RSI thresholds and nothing to configure.
type VWAPEMARSI struct{}

type Rule interface{}

type RuleReference struct {
	Rule Rule
}

func (w *RuleReference) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Content) == 0 {
		return nil
	}

	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.New("invalid rule yaml format")
	}

	key := value.Content[0].Value
	switch key {
	case "vroc_rsi":
		rule := DefaultVROCRSI()
		if err := value.Content[1].Decode(&rule); err != nil {
			return fmt.Errorf("failed parsing vroc_rsi rule config: %w", err)
		}
		w.Rule = rule
	case "vwap_ema_rsi":
		w.Rule = VWAPEMARSI{}
	default:
		return fmt.Errorf("unknown rule type: %s", key)
	}

	return nil
}

// source configs

type CSV struct {
	Path  string    `yaml:"path"`
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

type Alpaca struct {
	BaseUrl   string    `yaml:"base_url"`
	ApiKey    string    `yaml:"api_key"`
	Secret    string    `yaml:"secret"`
	Feed      string    `yaml:"feed"`
	Timeframe string    `yaml:"timeframe"`
	Start     time.Time `yaml:"start"`
	End       time.Time `yaml:"end"`
}

type Source interface{}

type SourceReference struct {
	Source Source
}

func (w *SourceReference) UnmarshalYAML(value *yaml.Node) error {
	if len(value.Content) == 0 {
		return nil
	}

	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return errors.New("invalid source yaml format")
	}

	key := value.Content[0].Value
	switch key {
	case "csv":
		var csv CSV
		if err := value.Content[1].Decode(&csv); err != nil {
			return fmt.Errorf("failed parsing csv source config: %w", err)
		}
		w.Source = csv
	case "alpaca":
		alpaca := Alpaca{Timeframe: "1Day"}
		if err := value.Content[1].Decode(&alpaca); err != nil {
			return fmt.Errorf("failed parsing alpaca source config: %w", err)
		}
		w.Source = alpaca
	default:
		return fmt.Errorf("unknown source type: %s", key)
	}

	return nil
}
