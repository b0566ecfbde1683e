// Package format normalizes raw extracted scalars into the display strings
// written onto certificate forms.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// Amount renders a limit value for a form field. Unset values render empty;
// exclusion literals and numeric zero render "Excluded" (a zero limit means
// the coverage is excluded, not a $0 limit); numbers get thousands
// separators, integral with no decimals and fractional with exactly two.
// Anything unparseable passes through unchanged — this never fails.
func Amount(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return ""
		}
		switch strings.ToLower(s) {
		case "excluded", "excl", "n/a":
			return "Excluded"
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return s
		}
		return amountNumber(n)
	case float64:
		return amountNumber(val)
	case float32:
		return amountNumber(float64(val))
	case int:
		return amountNumber(float64(val))
	case int64:
		return amountNumber(float64(val))
	default:
		return fmt.Sprint(val)
	}
}

func amountNumber(n float64) string {
	if n == 0 {
		return "Excluded"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return usPrinter.Sprintf("%d", int64(n))
	}
	return usPrinter.Sprintf("%.2f", n)
}
