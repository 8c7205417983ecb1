package dto

// Cliente registro del directorio de clientes (GET /api/clientes).
type Cliente struct {
	ID        int    `json:"id"`
	Empresa   string `json:"empresa"`
	Contacto  string `json:"contacto"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// CrearClienteRequest cuerpo de POST /api/clientes.
type CrearClienteRequest struct {
	Empresa   string `json:"empresa"`
	Contacto  string `json:"contacto"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
