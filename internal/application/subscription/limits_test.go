package subscription_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockpilot/internal/application/subscription"
)

// Límite -1 (ilimitado) nunca se alcanza, para cualquier uso ≥ 0.
func TestLimitReached_Ilimitado(t *testing.T) {
	for _, usage := range []int{0, 1, 10, 1000, 1 << 30} {
		assert.False(t, subscription.LimitReached(-1, usage), "uso %d", usage)
	}
}

// Con límite L ≥ 0: alcanzado ⇔ uso ≥ L.
func TestLimitReached_LimiteFinito(t *testing.T) {
	casos := []struct {
		limit, usage int
		reached      bool
	}{
		{0, 0, true}, // límite cero: siempre alcanzado
		{0, 5, true},
		{5, 0, false},
		{5, 4, false},
		{5, 5, true},
		{5, 6, true},
		{100, 99, false},
		{100, 100, true},
	}
	for _, c := range casos {
		assert.Equal(t, c.reached, subscription.LimitReached(c.limit, c.usage),
			"limit=%d usage=%d", c.limit, c.usage)
	}
}
