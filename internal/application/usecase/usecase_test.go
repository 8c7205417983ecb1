package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateway falso compartido por los casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type llamada struct {
	Metodo   string
	Endpoint string
	Cuerpo   any
}

type gatewayFalso struct {
	llamadas []llamada
	err      error
}

func (g *gatewayFalso) Do(_ context.Context, _, method, endpoint string, body, _ any) error {
	g.llamadas = append(g.llamadas, llamada{Metodo: method, Endpoint: endpoint, Cuerpo: body})
	return g.err
}

func (g *gatewayFalso) DoLogin(_ context.Context, endpoint string, body, _ any) (string, error) {
	g.llamadas = append(g.llamadas, llamada{Metodo: http.MethodPost, Endpoint: endpoint, Cuerpo: body})
	return "", g.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Lotes
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear un lote sin superficie positiva o sin datos → bloqueo local.
func TestLotes_CrearInvalidoNoTocaLaRed(t *testing.T) {
	casos := []dto.CrearLoteRequest{
		{FechaInicio: "2026-09-01", Superficie: decimal.NewFromInt(2)},          // sin tipo de alga
		{TipoAlga: "Gracilaria", Superficie: decimal.NewFromInt(2)},             // sin fecha
		{TipoAlga: "Gracilaria", FechaInicio: "2026-09-01"},                     // superficie cero
		{TipoAlga: "Gracilaria", FechaInicio: "2026-09-01", Superficie: decimal.NewFromInt(-1)},
	}
	for _, in := range casos {
		gw := &gatewayFalso{}
		uc := usecase.NewLotesUseCase(gw)
		assert.ErrorIs(t, uc.Crear(context.Background(), "c", in), domain.ErrInvalidInput)
		assert.Empty(t, gw.llamadas)
	}
}

// Caso 2: crear válido → POST /api/lotes con el cuerpo completo.
func TestLotes_CrearValidoPostea(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewLotesUseCase(gw)

	in := dto.CrearLoteRequest{
		TipoAlga:    "Gracilaria",
		FechaInicio: "2026-09-01",
		Superficie:  decimal.NewFromFloat(2.5),
	}
	require.NoError(t, uc.Crear(context.Background(), "c", in))
	require.Len(t, gw.llamadas, 1)
	assert.Equal(t, http.MethodPost, gw.llamadas[0].Metodo)
	assert.Equal(t, "/api/lotes", gw.llamadas[0].Endpoint)
}

// Caso 3: cosechar → PUT /api/lotes/:id/cosechar, sin cuerpo.
func TestLotes_CosecharUsaPUT(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewLotesUseCase(gw)

	require.NoError(t, uc.Cosechar(context.Background(), "c", 7))
	require.Len(t, gw.llamadas, 1)
	assert.Equal(t, http.MethodPut, gw.llamadas[0].Metodo)
	assert.Equal(t, "/api/lotes/7/cosechar", gw.llamadas[0].Endpoint)
	assert.Nil(t, gw.llamadas[0].Cuerpo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Caso 4: cambio de estado solo acepta los estados del dominio.
func TestPedidos_ActualizarEstadoValidaElEstado(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewPedidosUseCase(gw)

	err := uc.ActualizarEstado(context.Background(), "c", 3, "volando")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gw.llamadas)

	require.NoError(t, uc.ActualizarEstado(context.Background(), "c", 3, dto.PedidoEntregado))
	require.Len(t, gw.llamadas, 1)
	assert.Equal(t, http.MethodPut, gw.llamadas[0].Metodo)
	assert.Equal(t, "/api/pedidos/3/estado", gw.llamadas[0].Endpoint)

	cuerpo, ok := gw.llamadas[0].Cuerpo.(dto.ActualizarEstadoRequest)
	require.True(t, ok)
	assert.Equal(t, dto.PedidoEntregado, cuerpo.Estado)
}

// Caso 5: eliminar → DELETE /api/pedidos/:id.
func TestPedidos_EliminarUsaDELETE(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewPedidosUseCase(gw)

	require.NoError(t, uc.Eliminar(context.Background(), "c", 11))
	require.Len(t, gw.llamadas, 1)
	assert.Equal(t, http.MethodDelete, gw.llamadas[0].Metodo)
	assert.Equal(t, "/api/pedidos/11", gw.llamadas[0].Endpoint)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

// Caso 6: contraseña corta o rol fuera del dominio → bloqueo local.
func TestUsuarios_CrearInvalidoNoTocaLaRed(t *testing.T) {
	casos := []dto.CrearUsuarioRequest{
		{Usuario: "ana", Email: "a@b.cl", Contrasena: "123", Rol: "Gerencia"},      // contraseña corta
		{Usuario: "ana", Email: "a@b.cl", Contrasena: "123456", Rol: "SuperAdmin"}, // rol inventado
		{Email: "a@b.cl", Contrasena: "123456", Rol: "Personal"},                   // sin usuario
	}
	for _, in := range casos {
		gw := &gatewayFalso{}
		uc := usecase.NewUsuariosUseCase(gw)
		assert.ErrorIs(t, uc.Crear(context.Background(), "c", in), domain.ErrInvalidInput)
		assert.Empty(t, gw.llamadas)
	}
}

// Caso 7: alta válida → POST /api/usuarios; la contraseña viaja en claro al
// API, que es quien la hashea.
func TestUsuarios_CrearValidoPostea(t *testing.T) {
	gw := &gatewayFalso{}
	uc := usecase.NewUsuariosUseCase(gw)

	in := dto.CrearUsuarioRequest{Usuario: "ana", Email: "ana@algatrack.cl", Contrasena: "segura1", Rol: "Comercial"}
	require.NoError(t, uc.Crear(context.Background(), "c", in))
	require.Len(t, gw.llamadas, 1)
	assert.Equal(t, "/api/usuarios", gw.llamadas[0].Endpoint)
}
