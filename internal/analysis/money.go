package analysis

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var moneyNumberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// MoneyRange is a low/high USD pair parsed out of free text.
type MoneyRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ParseMoneyRange extracts a numeric range from a free-text money string such
// as "$10-$30", "$1,200 to $1,500", or "$45". Commas are stripped first; the
// first two numeric substrings become low/high (a single number yields
// low == high). Returns nil when no number is present.
func ParseMoneyRange(s string) *MoneyRange {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	matches := moneyNumberPattern.FindAllString(cleaned, 2)
	if len(matches) == 0 {
		return nil
	}

	first, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return nil
	}
	if len(matches) == 1 {
		return &MoneyRange{Low: first, High: first}
	}

	second, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return &MoneyRange{Low: first, High: first}
	}
	return &MoneyRange{
		Low:  math.Min(first, second),
		High: math.Max(first, second),
	}
}
