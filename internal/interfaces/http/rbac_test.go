package http_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-pro-test"
	testExpMin    = 60
)

// buildAccessApp monta una ruta por recurso con AuthMiddleware + RequireAccess
// y handlers dummy, para probar la tabla de accesos de extremo a extremo.
func buildAccessApp() *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }

	groups := map[string]apphttp.Resource{
		"/users":     apphttp.ResourceUsers,
		"/products":  apphttp.ResourceCatalog,
		"/leads":     apphttp.ResourceLeads,
		"/customers": apphttp.ResourceCustomers,
	}
	for path, res := range groups {
		g := app.Group(path, apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAccess(res))
		g.Get("/", ok)
		g.Post("/", ok)
		g.Put("/:id", ok)
		g.Delete("/:id", ok)
	}
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de accesos (rol x recurso x método)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAccess_TablaCompleta(t *testing.T) {
	app := buildAccessApp()

	cases := []struct {
		role   string
		method string
		path   string
		want   int
	}{
		// admin: escritura total
		{"admin", http.MethodPost, "/users/", http.StatusOK},
		{"admin", http.MethodPost, "/products/", http.StatusOK},
		{"admin", http.MethodDelete, "/leads/l1", http.StatusOK},
		{"admin", http.MethodPut, "/customers/c1", http.StatusOK},

		// sales: catálogo solo lectura, leads y clientes escritura, users nada
		{"sales", http.MethodGet, "/products/", http.StatusOK},
		{"sales", http.MethodPost, "/products/", http.StatusForbidden},
		{"sales", http.MethodPost, "/leads/", http.StatusOK},
		{"sales", http.MethodPut, "/customers/c1", http.StatusOK},
		{"sales", http.MethodGet, "/users/", http.StatusForbidden},

		// office: solo lectura en todo, users nada
		{"office", http.MethodGet, "/leads/", http.StatusOK},
		{"office", http.MethodPost, "/leads/", http.StatusForbidden},
		{"office", http.MethodGet, "/customers/", http.StatusOK},
		{"office", http.MethodDelete, "/customers/c1", http.StatusForbidden},
		{"office", http.MethodGet, "/users/", http.StatusForbidden},

		// service: clientes escritura, leads ni lectura, catálogo lectura
		{"service", http.MethodPut, "/customers/c1", http.StatusOK},
		{"service", http.MethodGet, "/leads/", http.StatusForbidden},
		{"service", http.MethodPut, "/leads/l1", http.StatusForbidden},
		{"service", http.MethodGet, "/products/", http.StatusOK},
		{"service", http.MethodPost, "/products/", http.StatusForbidden},

		// rol desconocido: nada
		{"intruso", http.MethodGet, "/products/", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%s_%s", tc.role, tc.method, tc.path), func(t *testing.T) {
			resp := doRequest(t, app, tc.method, tc.path, tokenForRole(t, tc.role))
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestAllowed_GetYHeadSonLectura(t *testing.T) {
	assert.True(t, apphttp.Allowed("office", apphttp.ResourceLeads, http.MethodHead))
	assert.False(t, apphttp.Allowed("office", apphttp.ResourceLeads, http.MethodPatch),
		"cualquier método que no sea GET/HEAD exige escritura")
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildAccessApp()
	resp := doRequest(t, app, http.MethodGet, "/products/", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAccessApp()
	resp := doRequest(t, app, http.MethodGet, "/products/", "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildAccessApp()
	resp := doRequest(t, app, http.MethodGet, "/products/", "Token abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	resp := doRequest(t, app, http.MethodGet, "/me", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
