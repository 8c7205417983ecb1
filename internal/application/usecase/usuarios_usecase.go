package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
)

// UsuariosUseCase administración de cuentas (solo Gerencia llega aquí).
type UsuariosUseCase struct {
	gw ports.Gateway
}

// NewUsuariosUseCase construye el caso de uso.
func NewUsuariosUseCase(gw ports.Gateway) *UsuariosUseCase {
	return &UsuariosUseCase{gw: gw}
}

// Listar trae la colección completa de usuarios.
func (uc *UsuariosUseCase) Listar(ctx context.Context, cookie string) ([]dto.Usuario, error) {
	var out []dto.Usuario
	if err := uc.gw.Do(ctx, cookie, http.MethodGet, "/api/usuarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Crear registra una cuenta. El hash de la contraseña lo hace el API.
func (uc *UsuariosUseCase) Crear(ctx context.Context, cookie string, in dto.CrearUsuarioRequest) error {
	if in.Usuario == "" || in.Email == "" || len(in.Contrasena) < 6 || !domain.Rol(in.Rol).Valido() {
		return domain.ErrInvalidInput
	}
	return uc.gw.Do(ctx, cookie, http.MethodPost, "/api/usuarios", in, nil)
}

// Eliminar borra la cuenta indicada.
func (uc *UsuariosUseCase) Eliminar(ctx context.Context, cookie string, id int) error {
	return uc.gw.Do(ctx, cookie, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), nil, nil)
}
