package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/usecase"
)

// CalendarioHandler agenda operativa de entregas y cosechas.
type CalendarioHandler struct {
	uc *usecase.CalendarioUseCase
}

// NewCalendarioHandler construye el handler.
func NewCalendarioHandler(uc *usecase.CalendarioUseCase) *CalendarioHandler {
	return &CalendarioHandler{uc: uc}
}

const tituloCalendario = "Calendario Operativo"

// Ver GET /calendario
func (h *CalendarioHandler) Ver(c *fiber.Ctx) error {
	eventos, err := h.uc.Listar(c.Context(), GetBackendCookie(c))
	if err != nil {
		return errorDeCarga(c, err, tituloCalendario, "calendario")
	}
	return c.Render("pages/calendario", bind(c, tituloCalendario, "calendario", fiber.Map{
		"Meses":      usecase.AgruparPorMes(eventos),
		"HayEventos": len(eventos) > 0,
	}), "layouts/main")
}
