package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/domain"
	"github.com/algatrack/console/pkg/session"
)

// CookieSesion nombre de la cookie de sesión de la consola.
const CookieSesion = "algatrack_sesion"

// Locals keys para los datos de sesión en Fiber.
const (
	LocalNombre        = "nombre"
	LocalRol           = "rol"
	LocalBackendCookie = "backend_cookie"
)

// RutaLogin y RutaInicio destinos de las redirecciones del guard.
const (
	RutaLogin  = "/login"
	RutaInicio = "/dashboard"
)

// RequireSesion valida la cookie de sesión y carga nombre, rol y la cookie del
// API a c.Locals. Sin cookie o con token inválido redirige a /login: la
// ausencia del rol cacheado equivale a "no autenticado".
func RequireSesion(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieSesion)
		if token == "" {
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		nombre, rol, backendCookie, err := session.Parse(secret, token)
		if err != nil || !domain.Rol(rol).Valido() {
			borrarCookieSesion(c)
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		c.Locals(LocalNombre, nombre)
		c.Locals(LocalRol, rol)
		c.Locals(LocalBackendCookie, backendCookie)
		return c.Next()
	}
}

// RequirePerfil autoriza por rol cacheado. Un rol fuera del conjunto redirige
// a la página de inicio autenticada, no a login: el usuario está autenticado
// pero no autorizado. Decisión pura sobre (rol, ruta); sin llamadas de red.
// Debe usarse DESPUÉS de RequireSesion.
func RequirePerfil(permitidos ...domain.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := domain.Rol(GetRol(c))
		if !rol.Valido() {
			return c.Redirect(RutaLogin, fiber.StatusFound)
		}
		if !rol.EnConjunto(permitidos) {
			return c.Redirect(RutaInicio, fiber.StatusFound)
		}
		return c.Next()
	}
}

// GetNombre devuelve el nombre visible del contexto (después de RequireSesion).
func GetNombre(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalNombre).(string)
	return s
}

// GetRol devuelve el rol cacheado del contexto.
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}

// GetBackendCookie devuelve la cookie de sesión del API para reenviar al gateway.
func GetBackendCookie(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalBackendCookie).(string)
	return s
}

func borrarCookieSesion(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieSesion,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
