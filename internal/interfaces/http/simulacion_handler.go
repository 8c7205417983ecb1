package http

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/simulacion"
	"github.com/algatrack/console/internal/domain"
	"github.com/algatrack/console/internal/infrastructure/backend"
)

// SimulacionHandler flujo del simulador ATP: formulario → cálculo → confirmación.
type SimulacionHandler struct {
	svc *simulacion.Service
}

// NewSimulacionHandler construye el handler.
func NewSimulacionHandler(svc *simulacion.Service) *SimulacionHandler {
	return &SimulacionHandler{svc: svc}
}

const tituloSimulacion = "Simulador de Escenarios Productivos"

// Form GET /simulacion — estado Idle, esperando parámetros.
func (h *SimulacionHandler) Form(c *fiber.Ctx) error {
	return h.render(c, simulacion.Idle(), simulacion.Solicitud{})
}

// Ejecutar POST /simulacion — corre la simulación y renderiza el veredicto.
// La validación (cantidad > 0, fecha presente) bloquea antes de la red.
func (h *SimulacionHandler) Ejecutar(c *fiber.Ctx) error {
	sol := solicitudDesdeForm(c)
	resultado, err := h.svc.Ejecutar(c.Context(), GetBackendCookie(c), sol)
	if err != nil {
		if backend.EsEstado(err, fiber.StatusUnauthorized) {
			borrarCookieSesion(c)
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		msg := mensajeDe(err)
		if err == domain.ErrInvalidInput {
			msg = "Ingresa una cantidad mayor a cero y una fecha de entrega"
		}
		return h.render(c, simulacion.Fallido(msg), sol)
	}
	return h.render(c, simulacion.ConResultado(resultado), sol)
}

// Confirmar POST /simulacion/confirmar — materializa un escenario factible
// como pedido real. Solo llega aquí el control que el veredicto verde habilita;
// cliente vacío se bloquea sin emitir la llamada de creación.
func (h *SimulacionHandler) Confirmar(c *fiber.Ctx) error {
	sol := solicitudDesdeForm(c)
	resultado, ok := decodificarResultado(c.FormValue("resultado"))
	if !ok {
		return h.render(c, simulacion.Fallido("La simulación expiró, vuelve a ejecutarla"), sol)
	}

	err := h.svc.ConfirmarPedido(c.Context(), GetBackendCookie(c), simulacion.Confirmacion{
		Cliente:      sol.Cliente,
		CantidadTon:  sol.CantidadTon,
		FechaEntrega: sol.FechaEntrega,
		Color:        resultado.Color,
	})
	if err != nil {
		if backend.EsEstado(err, fiber.StatusUnauthorized) {
			borrarCookieSesion(c)
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		// El resultado se conserva: el usuario puede corregir y reintentar.
		estado := simulacion.ConResultado(resultado)
		return h.renderConError(c, estado, sol, mensajeDe(err))
	}

	ponerFlash(c, "¡Pedido creado! La entrega ya aparece en el calendario.")
	return c.Redirect("/calendario", fiber.StatusFound)
}

func (h *SimulacionHandler) render(c *fiber.Ctx, estado simulacion.Estado, sol simulacion.Solicitud) error {
	return h.renderConError(c, estado, sol, "")
}

func (h *SimulacionHandler) renderConError(c *fiber.Ctx, estado simulacion.Estado, sol simulacion.Solicitud, errConfirmacion string) error {
	datos := fiber.Map{
		"EsIdle":          estado.Fase() == simulacion.FaseIdle,
		"PuedeConfirmar":  estado.PuedeConfirmar(),
		"Cliente":         sol.Cliente,
		"Cantidad":        formValueODefecto(sol.CantidadTon),
		"Fecha":           sol.FechaEntrega,
		"ErrConfirmacion": errConfirmacion,
	}
	if resultado, ok := estado.Resultado(); ok {
		datos["Resultado"] = resultado
		datos["EsFactible"] = resultado.Color == dto.ColorFactible
		datos["ResultadoCodificado"] = codificarResultado(resultado)
	}
	if msg, ok := estado.Mensaje(); ok {
		datos["ErrSimulacion"] = msg
	}
	return c.Render("pages/simulacion", bind(c, tituloSimulacion, "simulacion", datos), "layouts/main")
}

func solicitudDesdeForm(c *fiber.Ctx) simulacion.Solicitud {
	cantidad, _ := decimal.NewFromString(c.FormValue("cantidad"))
	return simulacion.Solicitud{
		CantidadTon:  cantidad,
		FechaEntrega: c.FormValue("fecha"),
		Cliente:      c.FormValue("cliente"),
	}
}

func formValueODefecto(d decimal.Decimal) string {
	if d.Sign() <= 0 {
		return ""
	}
	return d.String()
}

// El resultado viaja en un campo oculto del formulario de confirmación para
// que un fallo al crear el pedido re-renderice el veredicto sin volver a
// simular. Es estado de vista, no autoridad: el API re-valida el pedido.
func codificarResultado(r *dto.ResultadoSimulacion) string {
	raw, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

func decodificarResultado(s string) (*dto.ResultadoSimulacion, bool) {
	if s == "" {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	var r dto.ResultadoSimulacion
	if json.Unmarshal(raw, &r) != nil || !r.Completo() {
		return nil, false
	}
	return &r, true
}
