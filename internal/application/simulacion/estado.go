package simulacion

import "github.com/algatrack/console/internal/application/dto"

// Fase fase del flujo del simulador.
type Fase int

const (
	// FaseIdle esperando parámetros.
	FaseIdle Fase = iota
	// FaseConResultado el motor devolvió un resultado bien formado.
	FaseConResultado
	// FaseFallido la llamada falló o el payload llegó incompleto.
	FaseFallido
)

// Estado unión etiquetada del flujo: cada fase lleva solo los datos que le
// corresponden, en lugar de un puntero nulo con significado implícito.
// El estado "en vuelo" no existe aquí: cada POST renderiza su desenlace en la
// misma respuesta y el envío doble se bloquea en la vista, deshabilitando el
// botón al enviar.
type Estado struct {
	fase      Fase
	resultado *dto.ResultadoSimulacion
	mensaje   string
}

// Idle estado inicial.
func Idle() Estado { return Estado{fase: FaseIdle} }

// ConResultado estado con un resultado bien formado.
func ConResultado(r *dto.ResultadoSimulacion) Estado {
	return Estado{fase: FaseConResultado, resultado: r}
}

// Fallido estado de error con el mensaje a mostrar.
func Fallido(mensaje string) Estado {
	return Estado{fase: FaseFallido, mensaje: mensaje}
}

// Fase devuelve la fase actual.
func (e Estado) Fase() Fase { return e.fase }

// Resultado devuelve el resultado si la fase es FaseConResultado.
func (e Estado) Resultado() (*dto.ResultadoSimulacion, bool) {
	return e.resultado, e.fase == FaseConResultado
}

// Mensaje devuelve el error a mostrar si la fase es FaseFallido.
func (e Estado) Mensaje() (string, bool) {
	return e.mensaje, e.fase == FaseFallido
}

// PuedeConfirmar indica si el control de confirmación debe ofrecerse:
// solo con resultado presente y veredicto favorable.
func (e Estado) PuedeConfirmar() bool {
	return e.fase == FaseConResultado && e.resultado != nil && e.resultado.Color == dto.ColorFactible
}
