package generator

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

var currencyStripper = strings.NewReplacer("€", "", "£", "", "$", "")

// ParseMarketValue converts a display valuation such as "€487.2m" or "€850k" into a plain
// amount. Only m and k suffixes are understood; grouping or decimal commas ("€1,5m") and
// anything else that does not parse yield 0.
func ParseMarketValue(raw string) float64 {
	v := strings.ToLower(strings.TrimSpace(currencyStripper.Replace(raw)))
	if v == "" || v == "-" {
		return 0
	}

	multiplier := decimal.NewFromInt(1)
	switch {
	case strings.Contains(v, "m"):
		multiplier = million
		v = strings.ReplaceAll(v, "m", "")
	case strings.Contains(v, "k"):
		multiplier = thousand
		v = strings.ReplaceAll(v, "k", "")
	}

	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	out, _ := d.Mul(multiplier).Float64()
	return out
}
