// Package ports define los puertos de salida de la capa de aplicación.
package ports

import "context"

// Gateway puerto de salida hacia el API de negocio Algatrack. Es el único
// camino de red de la consola: cada caso de uso es un binding fino de
// endpoints sobre esta primitiva. La implementación concreta vive en
// internal/infrastructure/backend; para tests se inyecta un mock.
type Gateway interface {
	// Do ejecuta method endpoint contra el API reenviando la cookie de sesión
	// del backend. body se serializa como JSON solo en verbos que lo llevan;
	// la respuesta 2xx se decodifica en out (out nil descarta el cuerpo).
	// Un fallo retorna *backend.Error con Kind, Status y Payload.
	Do(ctx context.Context, cookie, method, endpoint string, body, out any) error

	// DoLogin ejecuta el POST de login (sin cookie previa) y devuelve, además
	// de decodificar la respuesta en out, la cookie de sesión que emitió el API.
	DoLogin(ctx context.Context, endpoint string, body, out any) (cookie string, err error)
}
