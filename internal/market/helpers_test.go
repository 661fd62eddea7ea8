package market

import (
	"time"

	"github.com/shopspring/decimal"
)

type testBar struct {
	time time.Time
	o    float64
	h    float64
	l    float64
	c    float64
	v    float64
}

func newTestBar(b Bar) testBar {
	o, _ := b.Open.Float64()
	h, _ := b.High.Float64()
	l, _ := b.Low.Float64()
	c, _ := b.Close.Float64()
	v, _ := b.Volume.Float64()
	return testBar{b.Time, o, h, l, c, v}
}

func (b *testBar) ToBar() Bar {
	return Bar{
		Time:   b.time,
		Open:   decimal.NewFromFloat(b.o),
		High:   decimal.NewFromFloat(b.h),
		Low:    decimal.NewFromFloat(b.l),
		Close:  decimal.NewFromFloat(b.c),
		Volume: decimal.NewFromFloat(b.v),
	}
}

func toSeries(bars []testBar) Series {
	s := Series{Symbol: "TEST", Bars: make([]Bar, len(bars))}
	for i, b := range bars {
		s.Bars[i] = b.ToBar()
	}

	return s
}
