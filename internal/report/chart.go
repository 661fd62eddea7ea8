package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gamma-omg/ta-signals/internal/indicator"
	"github.com/gamma-omg/ta-signals/internal/pipeline"
	"github.com/gamma-omg/ta-signals/internal/signal"
	"github.com/pplcc/plotext"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	colorPrice = color.RGBA{B: 200, A: 255}
	colorVWAP  = color.RGBA{R: 255, G: 165, A: 255}
	colorEMA   = color.RGBA{R: 128, B: 128, A: 255}
	colorBuy   = color.RGBA{G: 160, A: 255}
	colorSell  = color.RGBA{R: 220, A: 255}
	colorZero  = color.Gray{Y: 0}
)

// Chart stacks plots vertically over a shared time axis.
type Chart struct {
	plots   []*plot.Plot
	heights []float64
	w       int
	h       int
}

func NewChart(w, h int) *Chart {
	return &Chart{w: w, h: h}
}

func (c *Chart) add(p *plot.Plot, height float64) {
	c.plots = append(c.plots, p)
	c.heights = append(c.heights, height)
}

// Draw builds the price, VROC and RSI panes for a pipeline result.
func (c *Chart) Draw(res pipeline.Result) error {
	x := timeAxis(res)

	price, err := pricePane(res, x)
	if err != nil {
		return err
	}
	c.add(price, 2)

	vroc, err := oscillatorPane("Volume Rate of Change (VROC)", "VROC (%)", res.Indicators.VROC, x, vrocThresholds(res.Rule), 0)
	if err != nil {
		return err
	}
	c.add(vroc, 1)

	rsi, err := oscillatorPane("Relative Strength Index (RSI)", "RSI", res.Indicators.RSI, x, rsiThresholds(res.Rule), 50)
	if err != nil {
		return err
	}
	rsi.Y.Min = 0
	rsi.Y.Max = 100
	c.add(rsi, 1)

	return nil
}

func pricePane(res pipeline.Result, x []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s price with %s signals", res.Series.Symbol, ruleName(res.Rule))
	p.Y.Label.Text = "Price"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02\n15:04"}
	p.Legend.Top = true

	closes := res.Series.Closes()
	if err := addLine(p, "Close", points(x, closes), colorPrice, nil); err != nil {
		return nil, fmt.Errorf("failed to create price graph: %w", err)
	}
	if _, ok := res.Rule.(signal.VWAPEMARSIRule); ok {
		dashed := []vg.Length{vg.Points(4), vg.Points(2)}
		if err := addLine(p, "VWAP", points(x, res.Indicators.VWAP), colorVWAP, dashed); err != nil {
			return nil, fmt.Errorf("failed to create vwap graph: %w", err)
		}
		if err := addLine(p, "EMA", points(x, res.Indicators.EMA), colorEMA, dashed); err != nil {
			return nil, fmt.Errorf("failed to create ema graph: %w", err)
		}
	}

	buys, sells := make(plotter.XYs, 0), make(plotter.XYs, 0)
	for i, s := range res.Signals {
		switch s {
		case signal.Buy:
			buys = append(buys, plotter.XY{X: x[i], Y: closes[i]})
		case signal.Sell:
			sells = append(sells, plotter.XY{X: x[i], Y: closes[i]})
		}
	}
	if err := addMarkers(p, "Buy Signal", buys, draw.TriangleGlyph{}, colorBuy); err != nil {
		return nil, fmt.Errorf("failed to create buy markers: %w", err)
	}
	if err := addMarkers(p, "Sell Signal", sells, draw.CrossGlyph{}, colorSell); err != nil {
		return nil, fmt.Errorf("failed to create sell markers: %w", err)
	}

	return p, nil
}

type threshold struct {
	name  string
	value float64
	color color.Color
}

func oscillatorPane(title, label string, v indicator.Values, x []float64, levels []threshold, mid float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = label
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02\n15:04"}
	p.Legend.Top = true

	if err := addLine(p, label, points(x, v), colorPrice, nil); err != nil {
		return nil, fmt.Errorf("failed to create %s graph: %w", label, err)
	}

	m := plotter.NewFunction(func(float64) float64 { return mid })
	m.Color = colorZero
	p.Add(m)

	for _, l := range levels {
		value := l.value
		f := plotter.NewFunction(func(float64) float64 { return value })
		f.Color = l.color
		f.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(f)
		p.Legend.Add(fmt.Sprintf("%s (%v)", l.name, l.value), f)
	}

	return p, nil
}

func vrocThresholds(r signal.Rule) []threshold {
	rule, ok := r.(signal.VROCRSIRule)
	if !ok {
		return nil
	}

	return []threshold{
		{"Buy Threshold", rule.VROCBuy, colorBuy},
		{"Sell Threshold", rule.VROCSell, colorSell},
	}
}

func rsiThresholds(r signal.Rule) []threshold {
	switch rule := r.(type) {
	case signal.VROCRSIRule:
		return []threshold{
			{"Buy Threshold", rule.RSIBuy, colorBuy},
			{"Sell Threshold", rule.RSISell, colorSell},
		}
	case signal.VWAPEMARSIRule:
		return []threshold{
			{"Oversold", signal.VWAPEMARSIBuy, colorBuy},
			{"Overbought", signal.VWAPEMARSISell, colorSell},
		}
	default:
		return nil
	}
}

func timeAxis(res pipeline.Result) []float64 {
	times := res.Series.Times()
	x := make([]float64, len(times))
	for i, t := range times {
		x[i] = float64(t.Unix())
	}

	return x
}

// points drops missing values; plotter rejects NaN and Inf.
func points(x []float64, y indicator.Values) plotter.XYs {
	pts := make(plotter.XYs, 0, len(y))
	for i := range y {
		if y.Missing(i) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}

	return pts
}

func addLine(p *plot.Plot, name string, pts plotter.XYs, c color.Color, dashes []vg.Length) error {
	if len(pts) == 0 {
		return nil
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = c
	l.Width = vg.Points(0.8)
	l.Dashes = dashes

	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

func addMarkers(p *plot.Plot, name string, pts plotter.XYs, shape draw.GlyphDrawer, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)

	p.Add(s)
	p.Legend.Add(name, s)
	return nil
}

func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	var axis []*plot.Axis
	for _, p := range c.plots {
		axis = append(axis, &p.X)
	}
	plotext.UniteAxisRanges(axis)

	tbl := plotext.Table{
		RowHeights: c.heights,
		ColWidths:  []float64{1},
	}

	var plots2d [][]*plot.Plot
	for _, p := range c.plots {
		plots2d = append(plots2d, []*plot.Plot{p})
	}

	h := 0.0
	for _, v := range c.heights {
		h += v * float64(c.h)
	}

	img := vgimg.New(vg.Points(float64(c.w)), vg.Points(h))
	dc := draw.New(img)

	canvases := tbl.Align(plots2d, dc)
	for i, p := range c.plots {
		p.Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	n, err := png.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write chart: %w", err)
	}

	return n, nil
}

func (c *Chart) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close chart file: %w", cerr))
		}
	}()

	_, err = c.WriteTo(f)
	return err
}
