package dto

// EventoCalendario un evento operativo (GET /api/calendario): entregas de
// pedidos y cosechas estimadas de lotes. El API ya entrega el formato final.
type EventoCalendario struct {
	Title string `json:"title"`
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end,omitempty"`
	Color string `json:"color,omitempty"`
}
