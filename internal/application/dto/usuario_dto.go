package dto

// Usuario cuenta de acceso a la consola (GET /api/usuarios, sin contraseña).
type Usuario struct {
	ID      int    `json:"id"`
	Usuario string `json:"usuario"`
	Email   string `json:"email"`
	Rol     string `json:"rol"`
}

// CrearUsuarioRequest cuerpo de POST /api/usuarios (contraseña en texto, la hashea el API).
type CrearUsuarioRequest struct {
	Usuario    string `json:"usuario"`
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}
