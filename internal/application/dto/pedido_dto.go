package dto

import "github.com/shopspring/decimal"

// Pedido un pedido de venta tal como lo entrega GET /api/pedidos.
type Pedido struct {
	ID           int             `json:"id"`
	Cliente      string          `json:"cliente"`
	Producto     string          `json:"producto"`
	CantidadTon  decimal.Decimal `json:"cantidad_ton"`
	FechaEntrega string          `json:"fecha_entrega"`
	Estado       string          `json:"estado"` // "pendiente" | "entregado" | "cancelado"
}

// CrearPedidoRequest cuerpo de POST /api/pedidos.
type CrearPedidoRequest struct {
	Cliente      string          `json:"cliente"`
	Producto     string          `json:"producto"`
	CantidadTon  decimal.Decimal `json:"cantidad_ton"`
	FechaEntrega string          `json:"fecha_entrega"`
}

// ActualizarEstadoRequest cuerpo de PUT /api/pedidos/:id/estado.
type ActualizarEstadoRequest struct {
	Estado string `json:"estado"`
}

// Estados de pedido reconocidos por la consola.
const (
	PedidoPendiente = "pendiente"
	PedidoEntregado = "entregado"
	PedidoCancelado = "cancelado"
)

// ProductoSimulacion producto con que se materializa un escenario factible.
const ProductoSimulacion = "Pellet Estándar"
