// Package format renders extracted field values into their display
// form: currency with thousands separators, strftime-style dates,
// fixed-precision percentages and numbers.
package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

var ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)

// Currency formats a raw amount ("250,000.00", "$250000") as currency
// with the given symbol, thousands separators, and two decimal places.
// Unparseable input is returned unchanged.
func Currency(value, symbol string) string {
	if value == "" {
		return value
	}
	if symbol == "" {
		symbol = "$"
	}
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, symbol)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value
	}
	return symbol + humanize.FormatFloat("#,###.##", amount)
}

// Date reparses a free-form date string ("December 1st, 2023",
// "12/01/2023") and renders it with the given strftime layout.
// Unparseable input is returned unchanged.
func Date(value, layout string) string {
	if value == "" {
		return value
	}
	if layout == "" {
		layout = "%Y-%m-%d"
	}
	cleaned := ordinalSuffix.ReplaceAllString(strings.TrimSpace(value), "$1")
	t, err := dateparse.ParseAny(cleaned)
	if err != nil {
		return value
	}
	return strftime.Format(layout, t)
}

// Percentage formats a rate ("4.5", "4.5%") with a fixed number of
// decimal places, e.g. "4.500%". Unparseable input is returned unchanged.
func Percentage(value string, decimalPlaces int) string {
	if value == "" {
		return value
	}
	if decimalPlaces < 0 {
		decimalPlaces = 2
	}
	s := strings.TrimSuffix(strings.TrimSpace(value), "%")
	s = strings.TrimSpace(strings.TrimSuffix(s, "percent"))
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value
	}
	return strconv.FormatFloat(rate, 'f', decimalPlaces, 64) + "%"
}

// Number formats a numeric string with thousands separators and the
// given number of decimal places. Unparseable input is returned unchanged.
func Number(value string, decimalPlaces int) string {
	if value == "" {
		return value
	}
	if decimalPlaces < 0 {
		decimalPlaces = 2
	}
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value
	}
	// humanize renders "#,###." with zero decimals and "#,###.##" with two.
	layout := "#,###." + strings.Repeat("#", decimalPlaces)
	return humanize.FormatFloat(layout, n)
}

// Phone formats a ten-digit US phone number as "(XXX) XXX-XXXX".
// Anything else is returned unchanged.
func Phone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 10 {
		return value
	}
	return "(" + d[0:3] + ") " + d[3:6] + "-" + d[6:]
}

// Boolean renders truthy strings as "Yes" and everything else as "No".
func Boolean(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		return "Yes"
	default:
		return "No"
	}
}
