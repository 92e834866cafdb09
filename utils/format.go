package utils

import "fmt"

// FormatNumber formats a number with K/M/B suffixes for display.
func FormatNumber(num float64, precision int) string {
	switch {
	case num >= 1_000_000_000:
		return fmt.Sprintf("%.*fB", precision, num/1_000_000_000)
	case num >= 1_000_000:
		return fmt.Sprintf("%.*fM", precision, num/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.*fK", precision, num/1_000)
	default:
		return fmt.Sprintf("%.*f", precision, num)
	}
}

// FormatCurrency formats a monetary amount. USD amounts below one cent
// keep four decimals so micro-fees stay visible.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case "USD":
		if amount < 0.01 {
			return fmt.Sprintf("$%.4f", amount)
		}
		return fmt.Sprintf("$%.2f", amount)
	case "GWEI":
		return fmt.Sprintf("%.2f Gwei", amount)
	}
	return fmt.Sprintf("%.2f", amount)
}

// CalculatePercentage returns part as a percentage of whole, 0 when the
// whole is 0.
func CalculatePercentage(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return (part / whole) * 100
}

// PerformanceColor maps a TPS figure to the dashboard palette.
func PerformanceColor(tps float64) string {
	switch {
	case tps >= 10000:
		return "#10b981" // excellent
	case tps >= 1000:
		return "#8b5cf6" // good
	case tps >= 100:
		return "#f59e0b" // average
	default:
		return "#ef4444" // poor
	}
}

// Improvement captures new relative to old as both percentage and factor.
type Improvement struct {
	Percentage float64 `json:"percentage"`
	Multiplier float64 `json:"multiplier"`
}

// CalculateImprovement compares two values. A zero old value yields zeros
// rather than a division fault.
func CalculateImprovement(oldValue, newValue float64) Improvement {
	if oldValue == 0 {
		return Improvement{}
	}
	return Improvement{
		Percentage: round2((newValue - oldValue) / oldValue * 100),
		Multiplier: round2(newValue / oldValue),
	}
}

func round2(v float64) float64 {
	scaled := v * 100
	if scaled >= 0 {
		return float64(int64(scaled+0.5)) / 100
	}
	return float64(int64(scaled-0.5)) / 100
}
