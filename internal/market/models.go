package market

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bar struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// TypicalPrice is (high + low + close) / 3.
func (b Bar) TypicalPrice() float64 {
	h, _ := b.High.Float64()
	l, _ := b.Low.Float64()
	c, _ := b.Close.Float64()
	return (h + l + c) / 3
}

// Series is an ordered run of bars for one instrument sampled at a fixed interval.
type Series struct {
	Symbol string
	Bars   []Bar
}

func NewSeries(symbol string, bars []Bar) Series {
	return Series{Symbol: symbol, Bars: bars}
}

func (s Series) Len() int {
	return len(s.Bars)
}

func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i], _ = b.Close.Float64()
	}

	return closes
}

func (s Series) Volumes() []float64 {
	volumes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		volumes[i], _ = b.Volume.Float64()
	}

	return volumes
}

func (s Series) Times() []time.Time {
	times := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		times[i] = b.Time
	}

	return times
}
