package ratelimit_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stockpilot/pkg/ratelimit"
)

// Primera petición de un identificador nuevo: permitida con remaining = max-1.
func TestRateLimit_PrimeraPeticion(t *testing.T) {
	l := ratelimit.New(5, time.Minute)

	res := l.Check("10.0.0.1|firefox")
	assert.True(t, res.Allowed)
	assert.Equal(t, 4, res.Remaining)
	assert.False(t, res.ResetAt.IsZero())
}

// La petición max+1 dentro de la misma ventana se rechaza.
func TestRateLimit_ExcesoEnVentana(t *testing.T) {
	const max = 5
	l := ratelimit.New(max, time.Minute)

	for i := 0; i < max; i++ {
		res := l.Check("cliente")
		assert.True(t, res.Allowed, "petición %d debe pasar", i+1)
		assert.Equal(t, max-i-1, res.Remaining)
	}

	res := l.Check("cliente")
	assert.False(t, res.Allowed, "la petición %d debe rechazarse", max+1)
	assert.Equal(t, 0, res.Remaining)
	assert.False(t, res.ResetAt.IsZero(), "debe informar el reinicio de la ventana")
}

// Al vencer la ventana el contador se reinicia.
func TestRateLimit_VentanaVencidaReinicia(t *testing.T) {
	clock := time.Now()
	l := ratelimit.NewWithClock(2, time.Minute, func() time.Time { return clock })

	assert.True(t, l.Check("c").Allowed)
	assert.True(t, l.Check("c").Allowed)
	assert.False(t, l.Check("c").Allowed)

	clock = clock.Add(61 * time.Second)

	res := l.Check("c")
	assert.True(t, res.Allowed, "tras vencer la ventana debe permitir de nuevo")
	assert.Equal(t, 1, res.Remaining)
}

// Identificadores distintos llevan contadores independientes.
func TestRateLimit_ContadoresIndependientes(t *testing.T) {
	l := ratelimit.New(1, time.Minute)

	assert.True(t, l.Check("a").Allowed)
	assert.False(t, l.Check("a").Allowed)
	assert.True(t, l.Check("b").Allowed)
}

// Las entradas vencidas se desalojan del mapa (no crece sin límite).
func TestRateLimit_DesalojaVencidas(t *testing.T) {
	clock := time.Now()
	l := ratelimit.NewWithClock(1, time.Second, func() time.Time { return clock })

	for i := 0; i < 100; i++ {
		l.Check(fmt.Sprintf("cliente-%d", i))
	}
	clock = clock.Add(2 * time.Second)

	// Cualquier Check posterior desaloja lo vencido; la ventana nueva arranca limpia.
	res := l.Check("cliente-0")
	assert.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

// Valores no positivos usan los por defecto.
func TestRateLimit_Defaults(t *testing.T) {
	l := ratelimit.New(0, 0)
	res := l.Check("x")
	assert.True(t, res.Allowed)
	assert.Equal(t, ratelimit.DefaultMax-1, res.Remaining)
	assert.Equal(t, ratelimit.DefaultMax, l.Max())
}
