package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/stockpilot/internal/interfaces/http"
	"github.com/tu-usuario/stockpilot/pkg/csrf"
)

const testCSRFSecret = "csrf-secret-for-unit-tests"

// buildCSRFApp monta el middleware CSRF globalmente, como en main, con rutas
// representativas: una mutante protegida, una exenta y el emisor de tokens.
func buildCSRFApp(t *testing.T, signer *csrf.Signer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(apphttp.CSRFMiddleware(signer))

	app.Get("/api/csrf-token", apphttp.CSRFTokenHandler(signer))
	app.Post("/api/auth/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Post("/api/products", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/api/products", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func newTestSigner(t *testing.T) *csrf.Signer {
	t.Helper()
	signer, err := csrf.New(testCSRFSecret)
	require.NoError(t, err)
	return signer
}

func TestCSRF_GETPasaSinToken(t *testing.T) {
	app := buildCSRFApp(t, newTestSigner(t))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "los GET no exigen token CSRF")
}

func TestCSRF_RutaExentaPasaSinToken(t *testing.T) {
	app := buildCSRFApp(t, newTestSigner(t))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"login está exento: establece la sesión antes de poder pedir un token")
}

func TestCSRF_MutacionSinToken_Retorna403(t *testing.T) {
	app := buildCSRFApp(t, newTestSigner(t))

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CSRF_MISSING")
}

func TestCSRF_TokenEmitidoValida(t *testing.T) {
	signer := newTestSigner(t)
	app := buildCSRFApp(t, signer)

	// Flujo completo: pedir el token al endpoint y usarlo en la mutación.
	req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	token := body["csrf_token"]
	require.NotEmpty(t, token)

	req = httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set(apphttp.CSRFHeader, token)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusCreated, resp2.StatusCode)
}

func TestCSRF_TokenAlterado_Retorna403(t *testing.T) {
	signer := newTestSigner(t)
	app := buildCSRFApp(t, signer)

	token, err := signer.Issue()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set(apphttp.CSRFHeader, token+"x")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CSRF_INVALID")
}

func TestCSRF_TokenExpirado_Retorna403(t *testing.T) {
	// Reloj congelado para emitir y luego avanzado más allá de la vigencia.
	issuedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	signer, err := csrf.NewWithClock(testCSRFSecret, func() time.Time { return clock })
	require.NoError(t, err)

	token, err := signer.Issue()
	require.NoError(t, err)

	clock = issuedAt.Add(csrf.MaxAge + time.Minute)
	app := buildCSRFApp(t, signer)

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	req.Header.Set(apphttp.CSRFHeader, token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
