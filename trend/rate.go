package trend

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatRate renders a growth fraction as a percentage with one decimal, e.g.
// "+12.3%" or "-4.0%". Positive rates carry an explicit sign.
func FormatRate(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		if rate > 0 {
			return "+Inf%"
		}
		return fmt.Sprintf("%.1f%%", rate)
	}

	pct := decimal.NewFromFloat(rate).Shift(2).Round(1)
	if rate > 0 {
		return "+" + pct.StringFixed(1) + "%"
	}
	return pct.StringFixed(1) + "%"
}
