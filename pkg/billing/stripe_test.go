package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{150, 15000},
		{10.50, 1050},
		{0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AmountToCents(c.amount), "amount %v", c.amount)
	}
}
