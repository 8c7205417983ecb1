package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// PedidosUseCase gestión de pedidos de venta.
type PedidosUseCase struct {
	gw ports.Gateway
}

// NewPedidosUseCase construye el caso de uso.
func NewPedidosUseCase(gw ports.Gateway) *PedidosUseCase {
	return &PedidosUseCase{gw: gw}
}

// Listar trae la colección completa de pedidos.
func (uc *PedidosUseCase) Listar(ctx context.Context, cookie string) ([]dto.Pedido, error) {
	var out []dto.Pedido
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/pedidos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra una venta.
func (uc *PedidosUseCase) Crear(ctx context.Context, cookie string, in dto.CrearPedidoRequest) error {
	if in.Cliente == "" || in.FechaEntrega == "" || in.CantidadTon.Sign() <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPost, "/api/pedidos", in, nil)
}

// ActualizarEstado marca el pedido como entregado o cancelado.
// Convención única: PUT /api/pedidos/:id/estado.
func (uc *PedidosUseCase) ActualizarEstado(ctx context.Context, cookie string, id int, estado string) error {
	if estado != dto.PedidoEntregado && estado != dto.PedidoCancelado && estado != dto.PedidoPendiente {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPut, fmt.Sprintf("/api/pedidos/%d/estado", id),
		dto.ActualizarEstadoRequest{Estado: estado}, nil)
}

// Eliminar borra el pedido permanentemente.
func (uc *PedidosUseCase) Eliminar(ctx context.Context, cookie string, id int) error {
	return uc.gw.Do(ctx, cookie, http.MethodDelete, fmt.Sprintf("/api/pedidos/%d", id), nil, nil)
}
