package utils

import "fmt"

// FormatSoles renders an amount in Peruvian soles.
func FormatSoles(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sS/ %.2f", sign, amount)
}
