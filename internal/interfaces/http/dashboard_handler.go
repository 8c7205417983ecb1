package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/usecase"
)

// DashboardHandler panel de control gerencial.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Ver GET /dashboard
func (h *DashboardHandler) Ver(c *fiber.Ctx) error {
	data, err := h.uc.Obtener(c.Context(), GetBackendCookie(c))
	if err != nil {
		return errorDeCarga(c, err, "Panel de Control", "dashboard")
	}
	return c.Render("pages/dashboard", bind(c, "Panel de Control", "dashboard", fiber.Map{
		"KPIs":    data.KPIs,
		"Grafico": data.Grafico,
	}), "layouts/main")
}
