package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/algatrack/console/internal/infrastructure/backend"
)

// Cookies de flash: mensajes de una sola lectura que sobreviven al redirect
// post-mutación (patrón crear/borrar → redirect → GET re-carga la colección).
const (
	cookieFlashOK    = "algatrack_flash"
	cookieFlashError = "algatrack_flash_error"
)

func ponerFlash(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{Name: cookieFlashOK, Value: url.QueryEscape(msg), Path: "/", SameSite: "Lax"})
}

func ponerFlashError(c *fiber.Ctx, msg string) {
	c.Cookie(&fiber.Cookie{Name: cookieFlashError, Value: url.QueryEscape(msg), Path: "/", SameSite: "Lax"})
}

// leerFlash consume (lee y borra) los mensajes flash pendientes.
func leerFlash(c *fiber.Ctx) (ok, errMsg string) {
	if v := c.Cookies(cookieFlashOK); v != "" {
		ok, _ = url.QueryUnescape(v)
		c.Cookie(&fiber.Cookie{Name: cookieFlashOK, Value: "", MaxAge: -1, Path: "/"})
	}
	if v := c.Cookies(cookieFlashError); v != "" {
		errMsg, _ = url.QueryUnescape(v)
		c.Cookie(&fiber.Cookie{Name: cookieFlashError, Value: "", MaxAge: -1, Path: "/"})
	}
	return ok, errMsg
}

// bind arma el mapa base de toda vista autenticada: identidad cacheada para el
// navbar (qué enlaces ofrecer se decide por rol) y los flashes pendientes.
func bind(c *fiber.Ctx, titulo, activo string, datos fiber.Map) fiber.Map {
	m := fiber.Map{
		"Titulo": titulo,
		"Activo": activo,
		"Nombre": GetNombre(c),
		"Rol":    GetRol(c),
	}
	flashOK, flashErr := leerFlash(c)
	if flashOK != "" {
		m["Flash"] = flashOK
	}
	if flashErr != "" {
		m["FlashError"] = flashErr
	}
	for k, v := range datos {
		m[k] = v
	}
	return m
}

// errorDeCarga política de error en el fetch inicial de una página (§ manejo
// de errores): 401 = sesión expirada → limpiar cookie y volver a login;
// 403 = autenticado pero prohibido → negativa dentro de la página;
// cualquier otro fallo → banner local, nada es fatal. La distinción es por
// código de estado, nunca por texto del mensaje.
func errorDeCarga(c *fiber.Ctx, err error, titulo, activo string) error {
	if backend.EsEstado(err, fiber.StatusUnauthorized) {
		borrarCookieSesion(c)
		return c.Redirect(RutaLogin, fiber.StatusFound)
	}
	if backend.EsEstado(err, fiber.StatusForbidden) {
		return c.Render("pages/denegado", bind(c, titulo, activo, fiber.Map{
			"Mensaje": mensajeDe(err),
		}), "layouts/main")
	}
	return c.Render("pages/error", bind(c, titulo, activo, fiber.Map{
		"Mensaje": mensajeDe(err),
	}), "layouts/main")
}

// redirigirSiSesionExpirada corta el flujo de una mutación cuando el API
// respondió 401: la sesión cacheada ya no sirve, se limpia y se vuelve a login.
func redirigirSiSesionExpirada(c *fiber.Ctx, err error) (bool, error) {
	if backend.EsEstado(err, fiber.StatusUnauthorized) {
		borrarCookieSesion(c)
		return true, c.Redirect(RutaLogin, fiber.StatusFound)
	}
	return false, nil
}

// mensajeDe extrae el mensaje a mostrar de cualquier error.
func mensajeDe(err error) string {
	if be, ok := err.(*backend.Error); ok {
		return be.Message
	}
	return err.Error()
}
