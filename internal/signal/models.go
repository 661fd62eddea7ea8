package signal

import "fmt"

type Signal int8

const (
	Sell Signal = -1
	Hold Signal = 0
	Buy  Signal = 1
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Hold:
		return "HOLD"
	case Sell:
		return "SELL"
	default:
		return fmt.Sprintf("SIGNAL_%d", s)
	}
}

// Position is the exposure the signal stands for: +1 long, -1 short, 0 flat.
func (s Signal) Position() float64 {
	return float64(s)
}

func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signal) UnmarshalText(text []byte) error {
	switch string(text) {
	case "BUY":
		*s = Buy
	case "HOLD":
		*s = Hold
	case "SELL":
		*s = Sell
	default:
		return fmt.Errorf("unknown signal: %s", text)
	}

	return nil
}

// Series holds one signal per bar.
type Series []Signal

func (s Series) Count(sig Signal) int {
	n := 0
	for _, v := range s {
		if v == sig {
			n++
		}
	}

	return n
}
