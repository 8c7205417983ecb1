package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// ConfiguracionHandler parámetros económicos y estaciones biológicas.
type ConfiguracionHandler struct {
	uc *usecase.ConfiguracionUseCase
}

// NewConfiguracionHandler construye el handler.
func NewConfiguracionHandler(uc *usecase.ConfiguracionUseCase) *ConfiguracionHandler {
	return &ConfiguracionHandler{uc: uc}
}

const tituloConfiguracion = "Configuración del Sistema"

// Ver GET /configuracion — las dos pestañas se cargan juntas.
func (h *ConfiguracionHandler) Ver(c *fiber.Ctx) error {
	cookie := GetBackendCookie(c)
	economicos, err := h.uc.ObtenerEconomicos(c.Context(), cookie)
	if err != nil {
		return errorDeCarga(c, err, tituloConfiguracion, "configuracion")
	}
	estaciones, err := h.uc.ObtenerEstaciones(c.Context(), cookie)
	if err != nil {
		return errorDeCarga(c, err, tituloConfiguracion, "configuracion")
	}
	return c.Render("pages/configuracion", bind(c, tituloConfiguracion, "configuracion", fiber.Map{
		"Economicos": economicos,
		"Estaciones": estaciones,
	}), "layouts/main")
}

// GuardarEconomicos POST /configuracion/sistema — el formulario envía un campo
// por clave (param_<clave>); la lista completa se reenvía al API.
func (h *ConfiguracionHandler) GuardarEconomicos(c *fiber.Ctx) error {
	var params []dto.ParametroEconomico
	c.Context().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if !strings.HasPrefix(k, "param_") {
			return
		}
		valor, err := decimal.NewFromString(string(value))
		if err != nil {
			return
		}
		params = append(params, dto.ParametroEconomico{
			Clave: strings.TrimPrefix(k, "param_"),
			Valor: valor,
		})
	})
	if err := h.uc.GuardarEconomicos(c.Context(), GetBackendCookie(c), params); err != nil {
		return h.errorDeMutacion(c, err, "No se pudieron actualizar los precios")
	}
	ponerFlash(c, "Parámetros económicos actualizados")
	return c.Redirect("/configuracion", fiber.StatusFound)
}

// GuardarEstacion POST /configuracion/estaciones/:id
func (h *ConfiguracionHandler) GuardarEstacion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Estación inválida")
	}
	tasa, _ := decimal.NewFromString(c.FormValue("tasa_crecimiento"))
	dias, _ := strconv.Atoi(c.FormValue("dias_ciclo"))
	est := dto.Estacion{
		ID:              id,
		NombreEstacion:  c.FormValue("nombre_estacion"),
		Meses:           c.FormValue("meses"),
		TasaCrecimiento: tasa,
		DiasCiclo:       dias,
	}
	if err := h.uc.GuardarEstacion(c.Context(), GetBackendCookie(c), est); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo actualizar la estación")
	}
	ponerFlash(c, "Estación "+est.NombreEstacion+" actualizada")
	return c.Redirect("/configuracion", fiber.StatusFound)
}

func (h *ConfiguracionHandler) errorDeMutacion(c *fiber.Ctx, err error, prefijo string) error {
	if redirigido, resp := redirigirSiSesionExpirada(c, err); redirigido {
		return resp
	}
	ponerFlashError(c, prefijo+": "+mensajeDe(err))
	return c.Redirect("/configuracion", fiber.StatusFound)
}
