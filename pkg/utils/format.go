// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// GroupThousands inserts comma separators into the integer part of a
// fixed-2-decimal rendering of amount (e.g. 1234567.8 -> "1,234,567.80").
func GroupThousands(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := groupDigits(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupDigits comma-separates an integer string into groups of three.
func groupDigits(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "," + result
		s = s[:len(s)-3]
	}
	return s + "," + result
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// ChangePercent returns the percentage change from first to last.
func ChangePercent(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}
