package auth

import (
	"context"

	"github.com/algatrack/console/internal/application/dto"
	"github.com/algatrack/console/internal/application/ports"
	"github.com/algatrack/console/internal/domain"
	"github.com/algatrack/console/pkg/session"
)

// SessionConfig parámetros del token de sesión de la consola.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y logout contra el API de negocio.
//
// La consola nunca valida credenciales: delega en POST /api/login y, si el API
// acepta, cachea nombre y rol (más la cookie del API) en un token firmado.
// Ese es el único camino de escritura de la sesión; el logout es el único de borrado.
type AuthUseCase struct {
	gw  ports.Gateway
	cfg SessionConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(gw ports.Gateway, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{gw: gw, cfg: cfg}
}

// Login autentica contra el API y devuelve el token de sesión de la consola
// junto con la identidad cacheada. Credenciales vacías no generan llamada de red.
func (uc *AuthUseCase) Login(ctx context.Context, usuario, contrasena string) (token string, identidad dto.UsuarioSesion, err error) {
	if usuario == "" || contrasena == "" {
		return "", dto.UsuarioSesion{}, domain.ErrInvalidInput
	}
	var out dto.LoginResponse
	backendCookie, err := uc.gw.DoLogin(ctx, "/api/login", dto.LoginRequest{Usuario: usuario, Contrasena: contrasena}, &out)
	if err != nil {
		return "", dto.UsuarioSesion{}, err
	}
	if out.Usuario.Nombre == "" || !domain.Rol(out.Usuario.Rol).Valido() {
		return "", dto.UsuarioSesion{}, domain.ErrUnauthorized
	}
	token, err = session.Generate(uc.cfg.Secret, out.Usuario.Nombre, out.Usuario.Rol, backendCookie, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return "", dto.UsuarioSesion{}, err
	}
	return token, out.Usuario, nil
}

// Logout cierra la sesión en el API. El borrado de la cookie de la consola lo
// hace el handler; un fallo aquí no debe impedir salir.
func (uc *AuthUseCase) Logout(ctx context.Context, backendCookie string) error {
	return uc.gw.Do(ctx, backendCookie, "POST", "/api/logout", nil, nil)
}
