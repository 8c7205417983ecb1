package backend

import "fmt"

// Kind clasifica un fallo del gateway.
type Kind string

const (
	// KindNetwork la petición no pudo completarse (DNS, conexión, timeout).
	KindNetwork Kind = "network"
	// KindHTTP el API respondió con un estado fuera de 2xx.
	KindHTTP Kind = "http"
)

// Error fallo tipado del gateway. Siempre se propaga, nunca se traga: los
// handlers deciden por Status (401 sesión expirada vs 403 prohibido) sin
// re-parsear ni comparar strings del mensaje.
type Error struct {
	Kind    Kind
	Status  int            // 0 en fallos de red
	Code    string         // campo "code" del cuerpo de error, si vino
	Message string         // "message" del cuerpo, si no "error", si no el status text
	Payload map[string]any // cuerpo de error parseado, crudo
	cause   error
}

// Error implementa error.
func (e *Error) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("backend: error de conexión: %s", e.Message)
	}
	return fmt.Sprintf("backend: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap expone la causa de transporte en fallos de red.
func (e *Error) Unwrap() error { return e.cause }

// EsHTTP indica si err es un *Error de tipo HTTP y devuelve el estado.
func EsHTTP(err error) (int, bool) {
	be, ok := err.(*Error)
	if !ok || be.Kind != KindHTTP {
		return 0, false
	}
	return be.Status, true
}

// EsEstado indica si err es un fallo HTTP con el estado dado.
func EsEstado(err error, status int) bool {
	s, ok := EsHTTP(err)
	return ok && s == status
}
