// Package session implementa el token de sesión de la consola.
//
// La consola no valida credenciales: el API de negocio lo hace y emite su propia
// cookie de sesión. Aquí solo se cachean, firmados, el nombre a mostrar, el rol
// (para decidir qué páginas ofrecer) y la cookie del API para reenviarla en cada
// petición. La autorización real siempre la re-valida el API.
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los datos de sesión de la consola.
type Claims struct {
	jwt.RegisteredClaims
	Nombre        string `json:"nombre"`
	Rol           string `json:"rol"` // "Personal" | "Comercial" | "Gerencia"
	BackendCookie string `json:"backend_cookie"`
}

// Generate genera un token firmado con nombre, rol y la cookie de sesión del API.
func Generate(secret, nombre, rol, backendCookie, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   nombre,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Nombre:        nombre,
		Rol:           rol,
		BackendCookie: backendCookie,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve nombre, rol y la cookie del API.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
// La ausencia o invalidez del token equivale a "no autenticado".
func Parse(secret, tokenString string) (nombre, rol, backendCookie string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Nombre, claims.Rol, claims.BackendCookie, nil
}
