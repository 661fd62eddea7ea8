package source

import (
	"context"
	"testing"
	"time"

	"github.com/gamma-omg/ta-signals/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvLoader_Load(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	path := writeCsv(t, "data", `timestamp,open,high,low,close,volume
1460413380.0,421.07,521.07,321.06,121.06,1.192`)

	s, err := NewCsvLoader(discardLogger(), config.CSV{Path: path}).Load(ctx, "BTC")
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	assert.Equal(t, "BTC", s.Symbol)
	assert.True(t, time.Unix(1460413380, 0).Equal(s.Bars[0].Time))
	assert.Equal(t, decimal.NewFromFloat(421.07), s.Bars[0].Open)
	assert.Equal(t, decimal.NewFromFloat(521.07), s.Bars[0].High)
	assert.Equal(t, decimal.NewFromFloat(321.06), s.Bars[0].Low)
	assert.Equal(t, decimal.NewFromFloat(121.06), s.Bars[0].Close)
	assert.Equal(t, decimal.NewFromFloat(1.192), s.Bars[0].Volume)
}

func TestCsvLoader_filter(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	path := writeCsv(t, "data", `timestamp,open,high,low,close,volume
1390134600.0,800.0,800.0,800.0,800.0,0.0
1437452040.0,279.22,279.22,279.22,279.22,0.0
1460413380.0,421.07,521.07,321.06,121.06,1.192
1553889480.0,4080.0,4080.1,4080.0,4080.1,2.035854
1758127500.0,115510,115510,115482,115493,1.05828858
1758152940.0,116570,116577,116569,116574,1.60268598
`)

	s, err := NewCsvLoader(discardLogger(), config.CSV{
		Path:  path,
		Start: time.Unix(1437452041, 0),
		End:   time.Unix(1758127500, 0),
	}).Load(ctx, "BTC")
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	assert.True(t, time.Unix(1460413380, 0).Equal(s.Bars[0].Time))
	assert.True(t, time.Unix(1553889480, 0).Equal(s.Bars[1].Time))
}

func TestCsvLoader_errors(t *testing.T) {
	tbl := []string{
		"",
		"timestamp,open,high,low,close,volume\nnot-a-time,1,1,1,1,1\n",
		"timestamp,open,high,low,close,volume\n1,1,1,x,1,1\n",
		"timestamp,open,high,low,close\n1,1,1,1,1\n",
	}

	for _, src := range tbl {
		path := writeCsv(t, "data", src)
		_, err := NewCsvLoader(discardLogger(), config.CSV{Path: path}).Load(context.Background(), "X")
		assert.Error(t, err, src)
	}

	_, err := NewCsvLoader(discardLogger(), config.CSV{Path: "/does/not/exist.csv"}).Load(context.Background(), "X")
	assert.Error(t, err)
}

func TestCsvLoader_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeCsv(t, "data", "timestamp,open,high,low,close,volume\n1,1,1,1,1,1\n")
	_, err := NewCsvLoader(discardLogger(), config.CSV{Path: path}).Load(ctx, "X")
	assert.ErrorIs(t, err, context.Canceled)
}
