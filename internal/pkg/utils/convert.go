package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertToInt parses a query-string integer, returning 0 for anything
// unparsable.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// ParsePenceFromDecimal converts a gateway decimal amount string such as
// "12.34" into integer pence. The string is parsed integrally, never
// through a float, and fraction digits beyond two are truncated.
func ParsePenceFromDecimal(value string) (int64, error) {
	s := strings.TrimSpace(value)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	if s == "" || s == "." {
		return 0, fmt.Errorf("invalid decimal amount %q", value)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	pounds, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal amount %q: %w", value, err)
	}

	pence := int64(pounds) * 100
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		sub, err := strconv.ParseUint(frac, 10, 63)
		if err != nil {
			return 0, fmt.Errorf("invalid decimal amount %q: %w", value, err)
		}
		pence += int64(sub)
	}

	if negative {
		pence = -pence
	}
	return pence, nil
}
