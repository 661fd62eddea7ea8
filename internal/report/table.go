package report

import (
	"fmt"
	"io"
	"math"

	"github.com/gamma-omg/ta-signals/internal/pipeline"
	"github.com/gamma-omg/ta-signals/internal/signal"
	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the performance summary for a terminal.
func WriteTable(w io.Writer, res pipeline.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Symbol", "Rule", "Bars", "Buys", "Sells", "Total Return", "Sharpe Ratio"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.Append([]string{
		res.Series.Symbol,
		ruleName(res.Rule),
		fmt.Sprintf("%d", res.Series.Len()),
		fmt.Sprintf("%d", res.Signals.Count(signal.Buy)),
		fmt.Sprintf("%d", res.Signals.Count(signal.Sell)),
		fmt.Sprintf("%.2f%%", res.Summary.TotalReturn*100),
		formatSharpe(res.Summary.Sharpe),
	})
	table.Render()
}

func formatSharpe(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", v)
}
