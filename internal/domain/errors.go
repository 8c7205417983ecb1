package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrClienteRequerido  = errors.New("ingresa el nombre del cliente para confirmar")
	ErrNoFactible        = errors.New("el escenario no es factible, no puede generar pedido")
	ErrResultadoInvalido = errors.New("el simulador devolvió una respuesta incompleta")
)
