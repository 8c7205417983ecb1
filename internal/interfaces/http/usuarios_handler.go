package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/domain"
)

// UsuariosHandler administración de cuentas (ruta exclusiva de Gerencia).
type UsuariosHandler struct {
	uc *usecase.UsuariosUseCase
}

// NewUsuariosHandler construye el handler.
func NewUsuariosHandler(uc *usecase.UsuariosUseCase) *UsuariosHandler {
	return &UsuariosHandler{uc: uc}
}

const tituloUsuarios = "Administración de Usuarios"

// Listar GET /usuarios
func (h *UsuariosHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.uc.Listar(c.Context(), GetBackendCookie(c))
	if err != nil {
		return errorDeCarga(c, err, tituloUsuarios, "usuarios")
	}
	return c.Render("pages/usuarios", bind(c, tituloUsuarios, "usuarios", fiber.Map{
		"Usuarios": usuarios,
		"Roles":    []domain.Rol{domain.RolPersonal, domain.RolComercial, domain.RolGerencia},
	}), "layouts/main")
}

// Crear POST /usuarios
func (h *UsuariosHandler) Crear(c *fiber.Ctx) error {
	in := dto.CrearUsuarioRequest{
		Usuario:    c.FormValue("usuario"),
		Email:      c.FormValue("email"),
		Contrasena: c.FormValue("contrasena"),
		Rol:        c.FormValue("rol"),
	}
	if err := h.uc.Crear(c.Context(), GetBackendCookie(c), in); err != nil {
		if err == domain.ErrInvalidInput {
			return h.errorDeMutacion(c, err, "Revisa los campos: contraseña mínimo 6 caracteres y rol válido")
		}
		return h.errorDeMutacion(c, err, "No se pudo crear el usuario")
	}
	ponerFlash(c, "Usuario creado exitosamente")
	return c.Redirect("/usuarios", fiber.StatusFound)
}

// Eliminar POST /usuarios/:id/eliminar
func (h *UsuariosHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return h.errorDeMutacion(c, domain.ErrInvalidInput, "Usuario inválido")
	}
	if err := h.uc.Eliminar(c.Context(), GetBackendCookie(c), id); err != nil {
		return h.errorDeMutacion(c, err, "No se pudo eliminar el usuario")
	}
	return c.Redirect("/usuarios", fiber.StatusFound)
}

func (h *UsuariosHandler) errorDeMutacion(c *fiber.Ctx, err error, prefijo string) error {
	if redirigido, resp := redirigirSiSesionExpirada(c, err); redirigido {
		return resp
	}
	ponerFlashError(c, prefijo+": "+mensajeDe(err))
	return c.Redirect("/usuarios", fiber.StatusFound)
}
