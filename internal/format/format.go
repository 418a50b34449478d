package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtCurrency formats a whole-unit amount for the currencies the storefront
// quotes in. Catalog prices are integer yuan, never fractional.
// Example: FmtCurrency(18800, "CNY", "zh") => "¥18,800"
func FmtCurrency(amount int64, currency, lang string) string {
	currency = strings.ToUpper(currency)
	switch currency {
	case "CNY", "JPY":
		return fmt.Sprintf("¥%s", thousandSep(amount))
	case "USD":
		return "$" + thousandSep(amount)
	default:
		return fmt.Sprintf("%s %s", currency, thousandSep(amount))
	}
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// FmtDate formats time in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "zh":
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FmtRating renders a product rating with one decimal, trimming ".0".
func FmtRating(r float64) string {
	s := fmt.Sprintf("%.1f", r)
	return strings.TrimSuffix(s, ".0")
}
