package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algatrack/console/internal/domain"
	consolahttp "github.com/algatrack/console/internal/interfaces/http"
	"github.com/algatrack/console/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "secreto-de-pruebas-algatrack"
	testIssuer = "algatrack-console-test"
	testExpMin = 60
)

// buildGuardApp monta una app mínima con el guard de sesión y, opcionalmente,
// el guard de perfil, más un handler que expone la identidad cargada.
func buildGuardApp(permitidos ...domain.Rol) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{consolahttp.RequireSesion(testSecret)}
	if len(permitidos) > 0 {
		handlers = append(handlers, consolahttp.RequirePerfil(permitidos...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"nombre":         consolahttp.GetNombre(c),
			"rol":            consolahttp.GetRol(c),
			"backend_cookie": consolahttp.GetBackendCookie(c),
		})
	})
	app.Get("/pagina", handlers...)
	return app
}

// tokenPara genera un token de sesión de consola con el rol indicado.
func tokenPara(t *testing.T, nombre, rol, backendCookie string) string {
	t.Helper()
	tok, err := session.Generate(testSecret, nombre, rol, backendCookie, testIssuer, testExpMin)
	require.NoError(t, err)
	return tok
}

// pedirPagina lanza GET /pagina con la cookie de sesión indicada ("" = sin cookie).
func pedirPagina(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/pagina", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: consolahttp.CookieSesion, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSesion
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin cookie de sesión → redirección a /login.
func TestRequireSesion_SinCookieRedirigeALogin(t *testing.T) {
	app := buildGuardApp()
	resp := pedirPagina(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, consolahttp.RutaLogin, resp.Header.Get("Location"))
}

// Caso 2: token malformado → se limpia la cookie y se redirige a /login.
func TestRequireSesion_TokenInvalidoRedirigeALogin(t *testing.T) {
	app := buildGuardApp()
	resp := pedirPagina(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, consolahttp.RutaLogin, resp.Header.Get("Location"))

	// La cookie rota debe quedar marcada para borrado.
	var borrada bool
	for _, ck := range resp.Cookies() {
		if ck.Name == consolahttp.CookieSesion && ck.MaxAge < 0 {
			borrada = true
		}
	}
	assert.True(t, borrada, "una cookie inválida debe limpiarse al rechazarla")
}

// Caso 3: token firmado con otro secreto → rechazado.
func TestRequireSesion_FirmaIncorrectaRedirigeALogin(t *testing.T) {
	otro, err := session.Generate("otro-secreto", "Eva", "Gerencia", "", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildGuardApp()
	resp := pedirPagina(t, app, otro)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, consolahttp.RutaLogin, resp.Header.Get("Location"))
}

// Caso 4: token con rol fuera del dominio → tratado como no autenticado.
func TestRequireSesion_RolDesconocidoRedirigeALogin(t *testing.T) {
	app := buildGuardApp()
	resp := pedirPagina(t, app, tokenPara(t, "Eva", "SuperAdmin", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, consolahttp.RutaLogin, resp.Header.Get("Location"))
}

// Caso 5: token válido → pasa y carga nombre, rol y cookie del API en locals.
func TestRequireSesion_TokenValidoCargaIdentidad(t *testing.T) {
	app := buildGuardApp()
	resp := pedirPagina(t, app, tokenPara(t, "Carla Soto", "Comercial", "session=api-77"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Carla Soto", body["nombre"])
	assert.Equal(t, "Comercial", body["rol"])
	assert.Equal(t, "session=api-77", body["backend_cookie"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePerfil
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: rol dentro del conjunto permitido → pasa.
func TestRequirePerfil_RolPermitidoPasa(t *testing.T) {
	app := buildGuardApp(domain.RolComercial, domain.RolGerencia)
	resp := pedirPagina(t, app, tokenPara(t, "Carla", "Comercial", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 7: autenticado pero sin el perfil → redirige al inicio, NO a login.
func TestRequirePerfil_RolNoPermitidoRedirigeAInicio(t *testing.T) {
	app := buildGuardApp(domain.RolGerencia)
	resp := pedirPagina(t, app, tokenPara(t, "Pedro", "Personal", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, consolahttp.RutaInicio, resp.Header.Get("Location"),
		"un usuario autenticado sin perfil vuelve al dashboard, no al login")
}

// Caso 8: Gerencia entra a todo.
func TestRequirePerfil_GerenciaAccedeATodo(t *testing.T) {
	for _, conjunto := range [][]domain.Rol{
		{domain.RolGerencia},
		{domain.RolComercial, domain.RolGerencia},
		{domain.RolPersonal, domain.RolGerencia},
	} {
		app := buildGuardApp(conjunto...)
		resp := pedirPagina(t, app, tokenPara(t, "Eva", "Gerencia", ""))
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"Gerencia debe acceder con conjunto %v", conjunto)
	}
}
