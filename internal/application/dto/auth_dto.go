package dto

// LoginRequest cuerpo de POST /api/login del API de negocio.
type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse respuesta del login: identidad a cachear en la sesión de la consola.
type LoginResponse struct {
	Usuario UsuarioSesion `json:"usuario"`
}

// UsuarioSesion nombre visible y rol del usuario autenticado.
type UsuarioSesion struct {
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"` // "Personal" | "Comercial" | "Gerencia"
}
