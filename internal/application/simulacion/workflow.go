// Package simulacion implementa el flujo del simulador de escenarios ATP:
// formulario → cálculo remoto → confirmación opcional como pedido real.
package simulacion

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// Solicitud datos del escenario a simular. Vive solo durante un intento.
type Solicitud struct {
	CantidadTon  decimal.Decimal
	FechaEntrega string
	Cliente      string // opcional al simular; obligatorio al confirmar
}

// Confirmacion datos para materializar un escenario factible como pedido.
type Confirmacion struct {
	Cliente      string
	CantidadTon  decimal.Decimal
	FechaEntrega string
	Color        string // veredicto de la última simulación
}

// Service flujo del simulador sobre el gateway.
type Service struct {
	gw ports.Gateway
}

// NewService construye el servicio.
func NewService(gw ports.Gateway) *Service {
	return &Service{gw: gw}
}

// Ejecutar corre la simulación. La validación bloquea antes de cualquier
// llamada de red: cantidad > 0 y fecha no vacía. Un payload sin bloques de
// operaciones/financiero se trata como fallo, no como resultado.
func (s *Service) Ejecutar(ctx context.Context, cookie string, sol Solicitud) (*dto.ResultadoSimulacion, error) {
	if sol.CantidadTon.Sign() <= 0 || sol.FechaEntrega == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.ResultadoSimulacion
	err := s.gw.Do(ctx, cookie, http.MethodPost, "/api/simulacion",
		dto.SimulacionRequest{Cantidad: sol.CantidadTon, Fecha: sol.FechaEntrega}, &out)
	if err != nil {
		return nil, err
	}
	if !out.Completo() {
		return nil, domain.ErrResultadoInvalido
	}
	return &out, nil
}

// ConfirmarPedido crea el pedido real desde un escenario factible.
// Solo alcanzable con veredicto verde; exige cliente antes de tocar la red.
// Si el API falla, el llamador conserva el resultado y puede reintentar.
func (s *Service) ConfirmarPedido(ctx context.Context, cookie string, conf Confirmacion) error {
	if conf.Color != dto.ColorFactible {
		return domain.ErrNoFactible
	}
	if conf.Cliente == "" {
		return domain.ErrClienteRequerido
	}
	if conf.CantidadTon.Sign() <= 0 || conf.FechaEntrega == "" {
		return domain.ErrInvalidInput
	}
	return s.gw.Do(ctx, cookie, http.MethodPost, "/api/pedidos", dto.CrearPedidoRequest{
		Cliente:      conf.Cliente,
		Producto:     dto.ProductoSimulacion,
		CantidadTon:  conf.CantidadTon,
		FechaEntrega: conf.FechaEntrega,
	}, nil)
}
