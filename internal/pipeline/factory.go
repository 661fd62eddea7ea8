package pipeline

import (
	"fmt"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/signal"
)

func createRule(ref config.RuleReference) (signal.Rule, error) {
	vrocRsi, ok := ref.Rule.(config.VROCRSI)
	if ok {
		return signal.VROCRSIRule{
			VROCBuy:  vrocRsi.VROCBuy,
			VROCSell: vrocRsi.VROCSell,
			RSIBuy:   vrocRsi.RSIBuy,
			RSISell:  vrocRsi.RSISell,
		}, nil
	}

	_, ok = ref.Rule.(config.VWAPEMARSI)
	if ok {
		return signal.VWAPEMARSIRule{}, nil
	}

	return nil, fmt.Errorf("unknown signal rule: %v", ref.Rule)
}

// OptionsFromConfig maps the file configuration onto pipeline options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	rule, err := createRule(cfg.RuleRef)
	if err != nil {
		return Options{}, fmt.Errorf("failed to create signal rule: %w", err)
	}

	return Options{
		Params: indicator.Params{
			VROCPeriod: cfg.Indicators.VROCPeriod,
			RSIPeriod:  cfg.Indicators.RSIPeriod,
			EMAPeriod:  cfg.Indicators.EMAPeriod,
		},
		Rule:          rule,
		Annualization: cfg.Annualization,
	}, nil
}
