package usecase

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
)

// CalendarioUseCase agenda operativa: entregas de pedidos y cosechas estimadas.
type CalendarioUseCase struct {
	gw ports.Gateway
}

// NewCalendarioUseCase construye el caso de uso.
func NewCalendarioUseCase(gw ports.Gateway) *CalendarioUseCase {
	return &CalendarioUseCase{gw: gw}
}

// MesAgenda eventos de un mes, para la vista de agenda.
type MesAgenda struct {
	Etiqueta string // ej: "junio 2025"
	Eventos  []dto.EventoCalendario
}

// Listar trae los eventos del calendario.
func (uc *CalendarioUseCase) Listar(ctx context.Context, cookie string) ([]dto.EventoCalendario, error) {
	var out []dto.EventoCalendario
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/calendario", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var mesesES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// AgruparPorMes ordena los eventos por fecha y los agrupa por mes calendario.
// Eventos con fecha ilegible quedan al final bajo "sin fecha".
func AgruparPorMes(eventos []dto.EventoCalendario) []MesAgenda {
	type clave struct {
		anio int
		mes  time.Month
	}
	parse := func(s string) (time.Time, bool) {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	ordenados := make([]dto.EventoCalendario, len(eventos))
	copy(ordenados, eventos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		ti, oki := parse(ordenados[i].Start)
		tj, okj := parse(ordenados[j].Start)
		if oki != okj {
			return oki // fechas válidas primero
		}
		return ti.Before(tj)
	})

	var meses []MesAgenda
	indice := map[clave]int{}
	var sinFecha []dto.EventoCalendario
	for _, ev := range ordenados {
		t, ok := parse(ev.Start)
		if !ok {
			sinFecha = append(sinFecha, ev)
			continue
		}
		k := clave{t.Year(), t.Month()}
		i, visto := indice[k]
		if !visto {
			meses = append(meses, MesAgenda{
				Etiqueta: mesesES[t.Month()-1] + " " + t.Format("2006"),
			})
			i = len(meses) - 1
			indice[k] = i
		}
		meses[i].Eventos = append(meses[i].Eventos, ev)
	}
	if len(sinFecha) > 0 {
		meses = append(meses, MesAgenda{Etiqueta: "sin fecha", Eventos: sinFecha})
	}
	return meses
}
