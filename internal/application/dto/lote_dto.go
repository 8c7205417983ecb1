package dto

import "github.com/shopspring/decimal"

// Lote un lote de cultivo tal como lo entrega GET /api/lotes.
// Copia transitoria: se descarta al navegar, nunca es autoritativa.
type Lote struct {
	ID                   int             `json:"id"`
	TipoAlga             string          `json:"tipo_alga"`
	Superficie           decimal.Decimal `json:"superficie"` // hectáreas
	FechaInicio          string          `json:"fecha_inicio"`
	FechaCosechaEstimada string          `json:"fecha_cosecha_estimada"`
	Estado               string          `json:"estado"` // "activo" | "cosechado"
}

// CrearLoteRequest cuerpo de POST /api/lotes. La fecha de cosecha la calcula el API.
type CrearLoteRequest struct {
	TipoAlga    string          `json:"tipo_alga"`
	Superficie  decimal.Decimal `json:"superficie"`
	FechaInicio string          `json:"fecha_inicio"`
}

// LoteActivo estado de un lote en cultivo (habilita la acción de cosecha).
const LoteActivo = "activo"
