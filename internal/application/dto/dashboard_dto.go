package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	KPIs    DashboardKPIs     `json:"kpis"`
	Grafico []PuntoProduccion `json:"grafico"`
}

// DashboardKPIs indicadores principales del panel gerencial.
type DashboardKPIs struct {
	LotesActivos      int `json:"lotes_activos"`
	PedidosPendientes int `json:"pedidos_pendientes"`
}

// PuntoProduccion un punto del historial de producción (toneladas por mes).
type PuntoProduccion struct {
	Name       string          `json:"name"` // etiqueta del mes
	Produccion decimal.Decimal `json:"produccion"`
}
