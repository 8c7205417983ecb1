package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// LotesHandler gestión de plantaciones. Toda mutación redirige al GET, que
// vuelve a traer la colección completa: nunca se parcha el estado local.
type LotesHandler struct {
	uc *usecase.LotesUseCase
}

// NewLotesHandler construye el handler.
func NewLotesHandler(uc *usecase.LotesUseCase) *LotesHandler {
	return &LotesHandler{uc: uc}
}

const tituloLotes = "Gestión de Plantaciones"

// Listar GET /lotes
func (h *LotesHandler) Listar(c *fiber.Ctx) error {
	lotes, err := h.uc.Listar(c.Context(), GetBackendCookie(c))
	if err != nil {
		return errorDeCarga(c, err, tituloLotes, "lotes")
	}
	return c.Render("pages/lotes", bind(c, tituloLotes, "lotes", fiber.Map{
		"Lotes":        lotes,
		"EstadoActivo": dto.LoteActivo,
	}), "layouts/main")
}

// Crear POST /lotes
func (h *LotesHandler) Crear(c *fiber.Ctx) error {
	superficie, _ := decimal.NewFromString(c.FormValue("superficie"))
	in := dto.CrearLoteRequest{
		TipoAlga:    c.FormValue("tipo_alga"),
		Superficie:  superficie,
		FechaInicio: c.FormValue("fecha_inicio"),
	}
	if err := h.uc.Crear(c.Context(), GetBackendCookie(c), in); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo registrar la siembra")
	}
	ponerFlash(c, "Lote creado. Fecha de cosecha calculada automáticamente.")
	return c.Redirect("/lotes", fiber.StatusFound)
}

// Eliminar POST /lotes/:id/eliminar — la confirmación destructiva la pide la vista.
func (h *LotesHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Lote inválido")
	}
	if err := h.uc.Eliminar(c.Context(), GetBackendCookie(c), id); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo borrar el lote")
	}
	return c.Redirect("/lotes", fiber.StatusFound)
}

// Cosechar POST /lotes/:id/cosechar
func (h *LotesHandler) Cosechar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Lote inválido")
	}
	if err := h.uc.Cosechar(c.Context(), GetBackendCookie(c), id); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo registrar la cosecha")
	}
	ponerFlash(c, "Lote marcado como cosechado")
	return c.Redirect("/lotes", fiber.StatusFound)
}

func (h *LotesHandler) errorDeMutacion(c *fiber.Ctx, err error, prefijo string) error {
	if redirigido, resp := redirigirSiSesionExpirada(c, err); redirigido {
		return resp
	}
	ponerFlashError(c, prefijo+": "+mensajeDe(err))
	return c.Redirect("/lotes", fiber.StatusFound)
}
