package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// LotesUseCase gestión de lotes de cultivo.
type LotesUseCase struct {
	gw ports.Gateway
}

// NewLotesUseCase construye el caso de uso.
func NewLotesUseCase(gw ports.Gateway) *LotesUseCase {
	return &LotesUseCase{gw: gw}
}

// Listar trae la colección completa de lotes.
func (uc *LotesUseCase) Listar(ctx context.Context, cookie string) ([]dto.Lote, error) {
	var out []dto.Lote
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/lotes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra una siembra. La fecha de cosecha estimada la calcula el API.
func (uc *LotesUseCase) Crear(ctx context.Context, cookie string, in dto.CrearLoteRequest) error {
	if in.TipoAlga == "" || in.FechaInicio == "" || in.Superficie.Sign() <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPost, "/api/lotes", in, nil)
}

// Eliminar borra el lote indicado.
func (uc *LotesUseCase) Eliminar(ctx context.Context, cookie string, id int) error {
	return uc.gw.Do(ctx, cookie, http.MethodDelete, fmt.Sprintf("/api/lotes/%d", id), nil, nil)
}

// Cosechar marca el lote como cosechado.
func (uc *LotesUseCase) Cosechar(ctx context.Context, cookie string, id int) error {
	return uc.gw.Do(ctx, cookie, http.MethodPut, fmt.Sprintf("/api/lotes/%d/cosechar", id), nil, nil)
}
