package calculator

import (
	"math"

	"ads-daily-report/pkg/models"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Keys of the formatted metric map, in message order.
const (
	KeyCost     = "cost"
	KeyInstalls = "installs"
	KeyPU       = "pu"
	KeyCPI      = "cpi"
	KeyCPA      = "cpa"
	KeyPURate   = "pu_rate"
	KeyRevenue  = "revenue"
	KeyARPPU    = "arppu"
	KeyROAS     = "roas"
)

const currencySymbol = "¥"

// Format renders every metric for display. Rounding is half away from zero
// on the shortest decimal form of the value (2.5 → 3, 0.125 → 0.13).
func Format(m models.ResolvedMetrics) map[string]string {
	return map[string]string{
		KeyCost:     Currency(m.Cost),
		KeyInstalls: Count(m.Installs),
		KeyPU:       Count(m.PayingUsers),
		KeyCPI:      Currency(m.CPI),
		KeyCPA:      Currency(m.CPA),
		KeyPURate:   Percent(m.PURate),
		KeyRevenue:  Currency(m.Revenue),
		KeyARPPU:    Currency(m.ARPPU),
		KeyROAS:     Percent(m.ROAS),
	}
}

// Currency renders "¥1,234".
func Currency(v float64) string {
	return currencySymbol + Count(v)
}

// Count renders "1,234". Values beyond int64 keep every digit.
func Count(v float64) string {
	return humanize.BigComma(toDecimal(v).Round(0).BigInt())
}

// Percent renders "12.35%".
func Percent(v float64) string {
	return toDecimal(v).StringFixed(2) + "%"
}

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
