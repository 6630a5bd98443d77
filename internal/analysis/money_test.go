package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoneyRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *MoneyRange
	}{
		{"dash range", "$10-$30", &MoneyRange{Low: 10, High: 30}},
		{"single value", "$45", &MoneyRange{Low: 45, High: 45}},
		{"comma stripping", "$1,200 to $1,500", &MoneyRange{Low: 1200, High: 1500}},
		{"reversed order normalizes", "$30-$10", &MoneyRange{Low: 10, High: 30}},
		{"decimals", "around $9.99 to $19.95", &MoneyRange{Low: 9.99, High: 19.95}},
		{"prose around numbers", "roughly 15 or 25 dollars raw", &MoneyRange{Low: 15, High: 25}},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"no numbers", "unable to estimate", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMoneyRange(tt.in))
		})
	}
}
