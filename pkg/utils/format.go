// Package utils provides shared utility functions.
package utils

import "fmt"

// FormatPrice formats an optional price with two decimals. Absent values
// render as "n/a" so message assembly never has to special-case them.
func FormatPrice(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

// FormatPercent formats an optional percentage with sign and two decimals.
func FormatPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	sign := ""
	if *v > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, *v)
}
