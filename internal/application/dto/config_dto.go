package dto

import "github.com/shopspring/decimal"

// ParametroEconomico un costo unitario del sistema (GET/PUT /api/config/sistema).
// Ej: precio_agua_m3, precio_kwh, precio_diesel_litro, costo_hora_hombre.
type ParametroEconomico struct {
	Clave string          `json:"clave"`
	Valor decimal.Decimal `json:"valor"`
}

// Estacion parámetros biológicos de una estación del año (GET/PUT /api/config/estaciones).
type Estacion struct {
	ID              int             `json:"id"`
	NombreEstacion  string          `json:"nombre_estacion"`
	Meses           string          `json:"meses"` // ej: "12,1,2"
	TasaCrecimiento decimal.Decimal `json:"tasa_crecimiento"`
	DiasCiclo       int             `json:"dias_ciclo"`
}
