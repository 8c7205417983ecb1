package http_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algatrack/console/internal/application/dto"
	consolahttp "github.com/algatrack/console/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const resultadoVerdeJSON = `{
	"color": "green",
	"resumen": "Stock suficiente para entrega inmediata",
	"datos": {
		"escenario": {"estacion": "Verano"},
		"operaciones": {"desglose_dias": {"cultivo_cosecha": 30, "procesamiento": 5}, "dias_totales_estimados": 35},
		"financiero": {"costo_total": 1250000, "desglose_costos": {"agua": 300000, "energia": 450000, "diesel": 200000, "mano_obra": 300000}},
		"stock": {"disponible": 80, "deficit": 0}
	}
}`

// apiSimulador responde POST /api/simulacion con el veredicto indicado y
// registra las llamadas.
func apiSimulador(t *testing.T, resultado string) (*httptest.Server, *[]string) {
	t.Helper()
	var visitados []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitados = append(visitados, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/simulacion":
			_, _ = w.Write([]byte(resultado))
		case "/api/pedidos":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":99}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &visitados
}

func postSimulacion(t *testing.T, app *fiber.App, ruta string, form url.Values, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, ruta, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: consolahttp.CookieSesion, Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func resultadoCodificado(t *testing.T, color string) string {
	t.Helper()
	var r dto.ResultadoSimulacion
	require.NoError(t, json.Unmarshal([]byte(resultadoVerdeJSON), &r))
	r.Color = color
	raw, err := json.Marshal(&r)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /simulacion
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: escenario factible → la página muestra el veredicto y el control
// de confirmación con el resultado serializado.
func TestSimulacion_EscenarioFactibleMuestraVeredicto(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion",
		url.Values{"cantidad": {"10"}, "fecha": {"2026-10-15"}}, token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"POST /api/simulacion"}, *visitados)

	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "FACTIBLE")
	assert.Contains(t, string(cuerpo), "Stock suficiente para entrega inmediata")
	assert.Contains(t, string(cuerpo), `name="resultado"`,
		"el resultado debe viajar en el formulario de confirmación")
}

// Caso 2: cantidad inválida → mensaje local, sin llamada al motor.
func TestSimulacion_CantidadInvalidaNoTocaElAPI(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion",
		url.Values{"cantidad": {"0"}, "fecha": {"2026-10-15"}}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, *visitados)

	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "Ingresa una cantidad mayor a cero")
}

// Caso 3: payload incompleto del motor → estado de fallo con mensaje, no panic.
func TestSimulacion_PayloadIncompletoEsFallo(t *testing.T) {
	srv, _ := apiSimulador(t, `{"color":"green"}`)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion",
		url.Values{"cantidad": {"10"}, "fecha": {"2026-10-15"}}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cuerpo, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(cuerpo), `name="resultado"`,
		"un payload incompleto no debe ofrecer confirmación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /simulacion/confirmar
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: confirmación válida → un POST /api/pedidos y redirección al calendario.
func TestConfirmar_CreaPedidoYRedirigeAlCalendario(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion/confirmar", url.Values{
		"cliente":   {"AlgaSur"},
		"cantidad":  {"10"},
		"fecha":     {"2026-10-15"},
		"resultado": {resultadoCodificado(t, "green")},
	}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/calendario", resp.Header.Get("Location"))
	assert.Equal(t, []string{"POST /api/pedidos"}, *visitados)
}

// Caso 5: cliente vacío → bloqueo local; el veredicto sigue en pantalla y no
// hubo llamada de creación.
func TestConfirmar_ClienteVacioConservaElResultado(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion/confirmar", url.Values{
		"cantidad":  {"10"},
		"fecha":     {"2026-10-15"},
		"resultado": {resultadoCodificado(t, "green")},
	}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, *visitados, "cliente vacío no debe emitir la llamada de creación")

	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "ingresa el nombre del cliente")
	assert.Contains(t, string(cuerpo), "FACTIBLE", "el veredicto debe sobrevivir al bloqueo")
	assert.NotContains(t, string(cuerpo), `type="hidden" name="cliente"`,
		"el formulario de confirmación debe ofrecer el cliente como campo editable")
	assert.Contains(t, string(cuerpo), `action="/simulacion/confirmar"`,
		"el reintento con cliente corregido no debe exigir re-simular")
}

// Caso 6: veredicto amber → la confirmación se rechaza sin red.
func TestConfirmar_VeredictoAmbarBloqueado(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion/confirmar", url.Values{
		"cliente":   {"AlgaSur"},
		"cantidad":  {"10"},
		"fecha":     {"2026-10-15"},
		"resultado": {resultadoCodificado(t, "amber")},
	}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, *visitados)
}

// Caso 7: campo resultado ausente o corrupto → se pide volver a simular.
func TestConfirmar_ResultadoCorruptoPideResimular(t *testing.T) {
	srv, visitados := apiSimulador(t, resultadoVerdeJSON)
	app := buildConsola(t, srv.URL)
	token := tokenPara(t, "Carla", "Comercial", "session=x")

	resp := postSimulacion(t, app, "/simulacion/confirmar", url.Values{
		"cliente":   {"AlgaSur"},
		"cantidad":  {"10"},
		"fecha":     {"2026-10-15"},
		"resultado": {"no-es-base64!!"},
	}, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, *visitados)

	cuerpo, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(cuerpo), "vuelve a ejecutarla")
}
