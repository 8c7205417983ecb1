package usecase

import (
	"context"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// ConfiguracionUseCase parámetros económicos y estaciones biológicas del sistema.
// La consola solo los edita; el motor ATP del API es quien los consume.
type ConfiguracionUseCase struct {
	gw ports.Gateway
}

// NewConfiguracionUseCase construye el caso de uso.
func NewConfiguracionUseCase(gw ports.Gateway) *ConfiguracionUseCase {
	return &ConfiguracionUseCase{gw: gw}
}

// ObtenerEconomicos trae la lista de parámetros económicos.
func (uc *ConfiguracionUseCase) ObtenerEconomicos(ctx context.Context, cookie string) ([]dto.ParametroEconomico, error) {
	var out []dto.ParametroEconomico
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/config/sistema", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GuardarEconomicos actualiza la lista completa de parámetros económicos.
func (uc *ConfiguracionUseCase) GuardarEconomicos(ctx context.Context, cookie string, params []dto.ParametroEconomico) error {
	if len(params) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPut, "/api/config/sistema", params, nil)
}

// ObtenerEstaciones trae los parámetros biológicos por estación.
func (uc *ConfiguracionUseCase) ObtenerEstaciones(ctx context.Context, cookie string) ([]dto.Estacion, error) {
	var out []dto.Estacion
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/config/estaciones", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GuardarEstacion actualiza una estación.
func (uc *ConfiguracionUseCase) GuardarEstacion(ctx context.Context, cookie string, est dto.Estacion) error {
	if est.NombreEstacion == "" || est.DiasCiclo <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPut, "/api/config/estaciones", est, nil)
}
