package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Prices are stored as int64 paise so sums never lose precision.
// Rounding happens only here, at display time.

// FormatPrice renders paise as rupees: ₹220 for whole amounts,
// ₹220.50 otherwise.
func FormatPrice(paise int64) string {
	if paise%100 == 0 {
		return fmt.Sprintf("₹%d", paise/100)
	}
	return fmt.Sprintf("₹%d.%02d", paise/100, paise%100)
}

// ParsePrice parses admin input like "220" or "220.5" into paise.
// At most two decimal places; the result must be positive.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	if s == "" || strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("invalid price: %q", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || rupees < 0 {
		return 0, fmt.Errorf("invalid price: %q", s)
	}
	var paise int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid price: %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		paise, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price: %q", s)
		}
	}
	total := rupees*100 + paise
	if total <= 0 {
		return 0, fmt.Errorf("price must be greater than zero")
	}
	return total, nil
}
