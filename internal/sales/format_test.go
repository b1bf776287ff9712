package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "already two decimals", in: 67.5, want: 67.5},
		{name: "exact half rounds up", in: 0.125, want: 0.13},
		{name: "negative half rounds away from zero", in: -0.125, want: -0.13},
		{name: "below half", in: 12.3449, want: 12.34},
		// 954.425 is stored as 954.42499999..., toFixed(2) would give 954.42
		{name: "binary value just below a tie", in: 954.425, want: 954.43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}
