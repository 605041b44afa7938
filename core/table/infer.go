package table

import (
	"strconv"
	"strings"
)

// ParseNumber parses a cell value as a number. It accepts an optional sign,
// a decimal point, exponent notation, and comma thousands separators in the
// standard 3-digit grouping ("1,234,567.89"). The second return value is
// false when the value is not a number.
func ParseNumber(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if strings.Contains(s, ",") {
		if plain, ok := stripThousands(s); ok {
			if v, err := strconv.ParseFloat(plain, 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// stripThousands removes comma separators when they follow the standard
// grouping pattern. "1,234.5" normalizes to "1234.5"; "1,23" does not
// normalize at all, so it stays non-numeric.
func stripThousands(s string) (string, bool) {
	rest := s
	sign := ""
	if strings.HasPrefix(rest, "+") || strings.HasPrefix(rest, "-") {
		sign, rest = rest[:1], rest[1:]
	}
	frac := ""
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		rest, frac = rest[:dot], rest[dot:]
		if strings.Contains(frac, ",") {
			return "", false
		}
	}
	groups := strings.Split(rest, ",")
	if len(groups) < 2 {
		return "", false
	}
	if len(groups[0]) == 0 || len(groups[0]) > 3 {
		return "", false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return "", false
		}
	}
	for _, g := range groups {
		for _, r := range g {
			if r < '0' || r > '9' {
				return "", false
			}
		}
	}
	return sign + strings.Join(groups, "") + frac, true
}

// inferColumnType classifies one column from its values. A column is numeric
// only if it has at least one non-null value and every non-null value parses
// as a number.
func inferColumnType(rows [][]string, col int) ColumnType {
	nonNull := 0
	for _, row := range rows {
		v := row[col]
		if IsNull(v) {
			continue
		}
		nonNull++
		if _, ok := ParseNumber(v); !ok {
			return TypeText
		}
	}
	if nonNull == 0 {
		return TypeText
	}
	return TypeNumeric
}
