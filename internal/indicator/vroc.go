package indicator

import "github.com/gamma-omg/ta-signals/internal/market"

// VROC is the percentage change in volume over period bars. Bars whose
// reference volume is zero have no value.
func VROC(s market.Series, period int) Values {
	volumes := s.Volumes()
	res := missing(len(volumes))
	if period <= 0 {
		return res
	}

	for i := period; i < len(volumes); i++ {
		prev := volumes[i-period]
		if prev == 0 {
			continue
		}

		res[i] = (volumes[i] - prev) / prev * 100
	}

	return res
}
