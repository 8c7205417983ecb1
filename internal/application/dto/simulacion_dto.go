package dto

import "github.com/shopspring/decimal"

// SimulacionRequest cuerpo de POST /api/simulacion.
// cantidad en toneladas, fecha de entrega solicitada (YYYY-MM-DD).
type SimulacionRequest struct {
	Cantidad decimal.Decimal `json:"cantidad"`
	Fecha    string          `json:"fecha"`
}

// ResultadoSimulacion respuesta del motor ATP. Solo lectura para la consola:
// los valores numéricos se muestran tal cual llegan, sin redondeo ni conversión.
type ResultadoSimulacion struct {
	Color   string         `json:"color"` // "green" = factible | "amber" = requiere cultivo
	Resumen string         `json:"resumen"`
	Datos   DatosEscenario `json:"datos"`
}

// DatosEscenario detalle del escenario simulado.
type DatosEscenario struct {
	Escenario   Escenario   `json:"escenario"`
	Operaciones Operaciones `json:"operaciones"`
	Financiero  Financiero  `json:"financiero"`
	Stock       EstadoStock `json:"stock"`
}

// Escenario contexto estacional usado por el motor.
type Escenario struct {
	Estacion string `json:"estacion"`
}

// Operaciones desglose de tiempos por fase y lead time total.
type Operaciones struct {
	DesgloseDias         DesgloseDias `json:"desglose_dias"`
	DiasTotalesEstimados int          `json:"dias_totales_estimados"`
}

// DesgloseDias días por fase agrícola e industrial.
type DesgloseDias struct {
	CultivoCosecha int `json:"cultivo_cosecha"`
	Procesamiento  int `json:"procesamiento"`
}

// Financiero costo total y su desglose por insumo.
type Financiero struct {
	CostoTotal     decimal.Decimal `json:"costo_total"`
	DesgloseCostos DesgloseCostos  `json:"desglose_costos"`
}

// DesgloseCostos costos por insumo del escenario.
type DesgloseCostos struct {
	Agua     decimal.Decimal `json:"agua"`
	Energia  decimal.Decimal `json:"energia"`
	Diesel   decimal.Decimal `json:"diesel"`
	ManoObra decimal.Decimal `json:"mano_obra"`
}

// EstadoStock stock disponible contra el déficit del escenario.
type EstadoStock struct {
	Disponible decimal.Decimal `json:"disponible"`
	Deficit    decimal.Decimal `json:"deficit"`
}

// ColorFactible color de veredicto favorable: habilita la creación del pedido.
const ColorFactible = "green"

// Completo indica si el resultado trae los bloques mínimos para renderizarse:
// veredicto, operaciones con al menos un tiempo positivo y financiero con al
// menos un costo positivo. Un payload sin cualquiera de ellos se trata como fallo.
func (r *ResultadoSimulacion) Completo() bool {
	if r == nil {
		return false
	}
	if r.Color == "" {
		return false
	}
	if r.Datos.Operaciones.DiasTotalesEstimados <= 0 &&
		r.Datos.Operaciones.DesgloseDias.CultivoCosecha <= 0 &&
		r.Datos.Operaciones.DesgloseDias.Procesamiento <= 0 {
		return false
	}
	costos := r.Datos.Financiero.DesgloseCostos
	if r.Datos.Financiero.CostoTotal.Sign() <= 0 &&
		costos.Agua.Sign() <= 0 && costos.Energia.Sign() <= 0 &&
		costos.Diesel.Sign() <= 0 && costos.ManoObra.Sign() <= 0 {
		return false
	}
	return true
}
