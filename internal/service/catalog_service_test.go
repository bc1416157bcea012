package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19.999", "20"},
		{"19.994", "19.99"},
		{"19.995", "20"},
		{"19.99", "19.99"},
		{"0.005", "0.01"},
		{"-1.005", "-1.01"},
		{"100", "100"},
	}

	for _, tc := range cases {
		in, err := decimal.NewFromString(tc.in)
		assert.NoError(t, err)
		want, err := decimal.NewFromString(tc.want)
		assert.NoError(t, err)

		got := roundPrice(in)
		assert.True(t, want.Equal(got), "roundPrice(%s) = %s, want %s", tc.in, got, tc.want)
	}
}
