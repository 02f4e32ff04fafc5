package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePoints(t *testing.T) {
	cases := []struct {
		name    string
		minutes int
		want    int
	}{
		{"five minute task", 5, 5},
		{"ten minute task", 10, 6},
		{"fifteen minute task", 15, 6},
		{"twenty five minute task", 25, 7},
		{"long task", 120, 17},
		{"zero falls back to default", 0, 6},
		{"negative falls back to default", -5, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculatePoints(tc.minutes))
		})
	}
}
