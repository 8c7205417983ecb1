// Package usecase contiene los casos de uso de página de la consola.
// Cada uno es un binding fino de endpoints sobre el gateway: trae la colección
// completa al montar la página y emite exactamente una llamada por mutación.
package usecase

import (
	"context"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
)

// DashboardUseCase KPIs y el historial de producción del panel gerencial.
type DashboardUseCase struct {
	gw ports.Gateway
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(gw ports.Gateway) *DashboardUseCase {
	return &DashboardUseCase{gw: gw}
}

// Obtener trae el resumen del panel. La agregación la hace el API.
func (uc *DashboardUseCase) Obtener(ctx context.Context, cookie string) (*dto.DashboardResponse, error) {
	var out dto.DashboardResponse
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
