package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// ClientesHandler directorio de clientes.
type ClientesHandler struct {
	uc *usecase.ClientesUseCase
}

// NewClientesHandler construye el handler.
func NewClientesHandler(uc *usecase.ClientesUseCase) *ClientesHandler {
	return &ClientesHandler{uc: uc}
}

const tituloClientes = "Directorio de Clientes"

// Listar GET /clientes
func (h *ClientesHandler) Listar(c *fiber.Ctx) error {
	clientes, err := h.uc.Listar(c.Context(), GetBackendCookie(c))
	if err != nil {
		return errorDeCarga(c, err, tituloClientes, "clientes")
	}
	return c.Render("pages/clientes", bind(c, tituloClientes, "clientes", fiber.Map{
		"Clientes": clientes,
	}), "layouts/main")
}

// Crear POST /clientes
func (h *ClientesHandler) Crear(c *fiber.Ctx) error {
	in := dto.CrearClienteRequest{
		Empresa:   c.FormValue("empresa"),
		Contacto:  c.FormValue("contacto"),
		Email:     c.FormValue("email"),
		Telefono:  c.FormValue("telefono"),
		Direccion: c.FormValue("direccion"),
	}
	if err := h.uc.Crear(c.Context(), GetBackendCookie(c), in); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo registrar el cliente")
	}
	ponerFlash(c, "Cliente registrado")
	return c.Redirect("/clientes", fiber.StatusFound)
}

// Eliminar POST /clientes/:id/eliminar — en éxito el GET re-trae la lista (ya
// sin el id); en fallo la lista previa queda intacta y se muestra el mensaje.
func (h *ClientesHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Cliente inválido")
	}
	if err := h.uc.Eliminar(c.Context(), GetBackendCookie(c), id); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo eliminar el cliente")
	}
	return c.Redirect("/clientes", fiber.StatusFound)
}

func (h *ClientesHandler) errorDeMutacion(c *fiber.Ctx, err error, prefijo string) error {
	if redirigido, resp := redirigirSiSesionExpirada(c, err); redirigido {
		return resp
	}
	ponerFlashError(c, prefijo+": "+mensajeDe(err))
	return c.Redirect("/clientes", fiber.StatusFound)
}
