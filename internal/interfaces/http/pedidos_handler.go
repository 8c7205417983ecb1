package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// PedidosHandler gestión de pedidos de venta.
type PedidosHandler struct {
	uc       *usecase.PedidosUseCase
	clientes *usecase.ClientesUseCase // para el selector de cliente del formulario
}

// NewPedidosHandler construye el handler.
func NewPedidosHandler(uc *usecase.PedidosUseCase, clientes *usecase.ClientesUseCase) *PedidosHandler {
	return &PedidosHandler{uc: uc, clientes: clientes}
}

const tituloPedidos = "Gestión de Pedidos"

// Listar GET /pedidos
func (h *PedidosHandler) Listar(c *fiber.Ctx) error {
	cookie := GetBackendCookie(c)
	pedidos, err := h.uc.Listar(c.Context(), cookie)
	if err != nil {
		return errorDeCarga(c, err, tituloPedidos, "pedidos")
	}
	// El selector se llena aparte; si falla, el listado igual se muestra.
	clientes, err := h.clientes.Listar(c.Context(), cookie)
	if err != nil {
		clientes = nil
	}
	return c.Render("pages/pedidos", bind(c, tituloPedidos, "pedidos", fiber.Map{
		"Pedidos":         pedidos,
		"Clientes":        clientes,
		"EstadoEntregado": dto.PedidoEntregado,
		"EstadoCancelado": dto.PedidoCancelado,
		"EstadoPendiente": dto.PedidoPendiente,
	}), "layouts/main")
}

// Crear POST /pedidos
func (h *PedidosHandler) Crear(c *fiber.Ctx) error {
	cantidad, _ := decimal.NewFromString(c.FormValue("cantidad_ton"))
	in := dto.CrearPedidoRequest{
		Cliente:      c.FormValue("cliente"),
		Producto:     c.FormValue("producto"),
		CantidadTon:  cantidad,
		FechaEntrega: c.FormValue("fecha_entrega"),
	}
	if err := h.uc.Crear(c.Context(), GetBackendCookie(c), in); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo registrar la venta")
	}
	ponerFlash(c, "Pedido creado")
	return c.Redirect("/pedidos", fiber.StatusFound)
}

// ActualizarEstado POST /pedidos/:id/estado
func (h *PedidosHandler) ActualizarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Pedido inválido")
	}
	estado := c.FormValue("estado")
	if err := h.uc.ActualizarEstado(c.Context(), GetBackendCookie(c), id, estado); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo actualizar el estado")
	}
	return c.Redirect("/pedidos", fiber.StatusFound)
}

// Eliminar POST /pedidos/:id/eliminar
func (h *PedidosHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Pedido inválido")
	}
	if err := h.uc.Eliminar(c.Context(), GetBackendCookie(c), id); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo eliminar el pedido")
	}
	return c.Redirect("/pedidos", fiber.StatusFound)
}

func (h *PedidosHandler) errorDeMutacion(c *fiber.Ctx, err error, prefijo string) error {
	if redirigido, resp := redirigirSiSesionExpirada(c, err); redirigido {
		return resp
	}
	ponerFlashError(c, prefijo+": "+mensajeDe(err))
	return c.Redirect("/pedidos", fiber.StatusFound)
}
