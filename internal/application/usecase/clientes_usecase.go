package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// ClientesUseCase directorio de clientes.
type ClientesUseCase struct {
	gw ports.Gateway
}

// NewClientesUseCase construye el caso de uso.
func NewClientesUseCase(gw ports.Gateway) *ClientesUseCase {
	return &ClientesUseCase{gw: gw}
}

// Listar trae la colección completa de clientes.
func (uc *ClientesUseCase) Listar(ctx context.Context, cookie string) ([]dto.Cliente, error) {
	var out []dto.Cliente
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra un cliente. Solo la razón social es obligatoria.
func (uc *ClientesUseCase) Crear(ctx context.Context, cookie string, in dto.CrearClienteRequest) error {
	if in.Empresa == "" {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPost, "/api/clientes", in, nil)
}

// Eliminar borra el cliente indicado.
func (uc *ClientesUseCase) Eliminar(ctx context.Context, cookie string, id int) error {
	return uc.gw.Do(ctx, cookie, http.MethodDelete, fmt.Sprintf("/api/clientes/%d", id), nil, nil)
}
