package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/algatrack/console/pkg/logger"
)

// AccessLog registra cada petición atendida con un request id propio.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		inicio := time.Now()

		err := c.Next()

		evento := log.Info()
		if err != nil {
			evento = log.Error().Err(err)
		}
		evento.
			Str("request_id", requestID).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("estado", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Msg("petición atendida")
		return err
	}
}
