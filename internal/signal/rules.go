package signal

import "github.com/gamma-omg/ta-signals/internal/indicator"

// Inputs are the per-bar values a rule may look at. Every slice is aligned
// with the source series.
type Inputs struct {
	Close      []float64
	Indicators indicator.Set
}

type Rule interface {
	Name() string
	Evaluate(i int, in Inputs) Signal
}

// VROCRSIRule buys on a volume surge into an oversold RSI and sells on a
// volume drop into an overbought RSI.
type VROCRSIRule struct {
	VROCBuy  float64
	VROCSell float64
	RSIBuy   float64
	RSISell  float64
}

func DefaultVROCRSIRule() VROCRSIRule {
	return VROCRSIRule{
		VROCBuy:  20,
		VROCSell: -20,
		RSIBuy:   30,
		RSISell:  70,
	}
}

func (r VROCRSIRule) Name() string {
	return "vroc_rsi"
}

func (r VROCRSIRule) Evaluate(i int, in Inputs) Signal {
	vroc, ok := in.Indicators.VROC.At(i)
	if !ok {
		return Hold
	}
	rsi, ok := in.Indicators.RSI.At(i)
	if !ok {
		return Hold
	}

	return decide(
		vroc > r.VROCBuy && rsi < r.RSIBuy,
		vroc < r.VROCSell && rsi > r.RSISell,
	)
}

const (
	VWAPEMARSIBuy  = 40.0
	VWAPEMARSISell = 60.0
)

// VWAPEMARSIRule buys a close above VWAP but below the EMA with RSI under 40,
// and sells a close below VWAP but above the EMA with RSI over 60.
type VWAPEMARSIRule struct{}

func (r VWAPEMARSIRule) Name() string {
	return "vwap_ema_rsi"
}

func (r VWAPEMARSIRule) Evaluate(i int, in Inputs) Signal {
	if i < 0 || i >= len(in.Close) {
		return Hold
	}
	price := in.Close[i]

	vwap, ok := in.Indicators.VWAP.At(i)
	if !ok {
		return Hold
	}
	ema, ok := in.Indicators.EMA.At(i)
	if !ok {
		return Hold
	}
	rsi, ok := in.Indicators.RSI.At(i)
	if !ok {
		return Hold
	}

	return decide(
		price > vwap && price < ema && rsi < VWAPEMARSIBuy,
		price < vwap && price > ema && rsi > VWAPEMARSISell,
	)
}

// decide resolves the two predicates. Sell wins when both hold.
func decide(buy, sell bool) Signal {
	if sell {
		return Sell
	}
	if buy {
		return Buy
	}

	return Hold
}

// Generate evaluates the rule on every bar independently.
func Generate(r Rule, in Inputs) Series {
	res := make(Series, len(in.Close))
	for i := range res {
		res[i] = r.Evaluate(i, in)
	}

	return res
}
