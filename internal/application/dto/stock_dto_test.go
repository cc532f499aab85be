package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// El body acepta quantity como número o string; la entrada no numérica se
// coerciona a 0 en vez de rechazarse.
func TestApplyStockRequest_Delta(t *testing.T) {
	cases := []struct {
		name     string
		quantity any
		want     int64
	}{
		{"número JSON", float64(7), 7},
		{"número negativo", float64(-3), -3},
		{"número con decimales se trunca", float64(2.9), 2},
		{"string numérico", "15", 15},
		{"string con espacios", "  4 ", 4},
		{"string decimal se trunca", "3.7", 3},
		{"string vacío", "", 0},
		{"string no numérico", "muchos", 0},
		{"nulo", nil, 0},
		{"booleano", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ApplyStockRequest{Quantity: tc.quantity}
			assert.Equal(t, tc.want, r.Delta())
		})
	}
}
