package csrf_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockpilot/pkg/csrf"
)

const testSecret = "clave-de-prueba-unitaria"

// Un token recién emitido debe validar.
func TestCSRF_EmitirYValidar(t *testing.T) {
	s, err := csrf.New(testSecret)
	require.NoError(t, err)

	token, err := s.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, s.Validate(token))
}

// Nonce alterado → la firma deja de coincidir.
func TestCSRF_NonceAlterado_Falla(t *testing.T) {
	s, err := csrf.New(testSecret)
	require.NoError(t, err)

	token, err := s.Issue()
	require.NoError(t, err)

	parts := strings.SplitN(token, ":", 3)
	require.Len(t, parts, 3)
	alterado := "ffffffffffffffffffffffffffffffff:" + parts[1] + ":" + parts[2]

	assert.Error(t, s.Validate(alterado))
}

// Firma alterada → inválido.
func TestCSRF_FirmaAlterada_Falla(t *testing.T) {
	s, err := csrf.New(testSecret)
	require.NoError(t, err)

	token, err := s.Issue()
	require.NoError(t, err)

	assert.Error(t, s.Validate(token[:len(token)-4]+"0000"))
}

// Token firmado con otra clave → inválido.
func TestCSRF_OtraClave_Falla(t *testing.T) {
	s1, err := csrf.New(testSecret)
	require.NoError(t, err)
	s2, err := csrf.New("otra-clave")
	require.NoError(t, err)

	token, err := s1.Issue()
	require.NoError(t, err)

	assert.Error(t, s2.Validate(token))
}

// Token con más de 24 horas → expirado.
func TestCSRF_Expirado_Falla(t *testing.T) {
	ahora := time.Now()
	emision := ahora.Add(-25 * time.Hour)

	clock := emision
	s, err := csrf.NewWithClock(testSecret, func() time.Time { return clock })
	require.NoError(t, err)

	token, err := s.Issue()
	require.NoError(t, err)

	// Dentro de la ventana todavía valida.
	clock = emision.Add(23 * time.Hour)
	assert.NoError(t, s.Validate(token))

	// Pasadas las 24 horas, falla.
	clock = ahora
	assert.Error(t, s.Validate(token))
}

// Formatos malformados fallan cerrado.
func TestCSRF_Malformado_Falla(t *testing.T) {
	s, err := csrf.New(testSecret)
	require.NoError(t, err)

	casos := []string{
		"",
		"solo-una-parte",
		"dos:partes",
		"a:b:c:d",
		"::",
		"nonce:no-numerico:0000",
	}
	for _, c := range casos {
		assert.Error(t, s.Validate(c), "debe fallar: %q", c)
	}
}

// Secret vacío no es aceptable.
func TestCSRF_SecretVacio(t *testing.T) {
	_, err := csrf.New("")
	assert.Error(t, err)
}
