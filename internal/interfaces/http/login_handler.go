package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/application/auth"
	"github.com/algatrack/console/internal/domain"
	"github.com/algatrack/console/internal/infrastructure/backend"
)

// LoginHandler acceso corporativo: formulario, login y logout.
type LoginHandler struct {
	uc         *auth.AuthUseCase
	expMinutes int
}

// NewLoginHandler construye el handler.
func NewLoginHandler(uc *auth.AuthUseCase, expMinutes int) *LoginHandler {
	return &LoginHandler{uc: uc, expMinutes: expMinutes}
}

// Form GET /login
func (h *LoginHandler) Form(c *fiber.Ctx) error {
	return c.Render("pages/login", fiber.Map{"Titulo": "Acceso Corporativo"}, "layouts/publico")
}

// Login POST /login — éxito escribe la sesión (única vía de escritura) y
// redirige al panel; 401 del API vuelve al formulario con el mensaje.
func (h *LoginHandler) Login(c *fiber.Ctx) error {
	usuario := c.FormValue("usuario")
	contrasena := c.FormValue("contrasena")

	token, _, err := h.uc.Login(c.Context(), usuario, contrasena)
	if err != nil {
		mensaje := "Credenciales incorrectas"
		switch {
		case err == domain.ErrInvalidInput:
			mensaje = "Usuario y contraseña son requeridos"
		case backend.EsEstado(err, fiber.StatusUnauthorized):
			mensaje = mensajeDe(err)
		default:
			if be, ok := err.(*backend.Error); ok && be.Kind == backend.KindNetwork {
				mensaje = "No se pudo conectar con el servidor"
			}
		}
		return c.Render("pages/login", fiber.Map{
			"Titulo": "Acceso Corporativo",
			"Error":  mensaje,
		}, "layouts/publico")
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    token,
		MaxAge:   h.expMinutes * 60,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect(RutaInicio, fiber.StatusFound)
}

// Logout POST /logout — cierra sesión en el API (mejor esfuerzo) y borra la
// cookie de la consola (única vía de borrado).
func (h *LoginHandler) Logout(c *fiber.Ctx) error {
	_ = h.uc.Logout(c.Context(), GetBackendCookie(c))
	borrarCookieSesion(c)
	return c.Redirect(RutaLogin, fiber.StatusFound)
}
