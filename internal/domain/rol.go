package domain

// Rol perfil de acceso de un usuario Algatrack.
// El valor viene del API en el login y se cachea en la sesión de la consola;
// solo controla qué páginas se ofrecen, el API re-valida cada petición.
type Rol string

const (
	// RolPersonal operaciones de campo (cultivo y cosecha).
	RolPersonal Rol = "Personal"
	// RolComercial ventas (pedidos, clientes, simulador).
	RolComercial Rol = "Comercial"
	// RolGerencia administración, acceso completo.
	RolGerencia Rol = "Gerencia"
)

// Valido indica si el rol es uno de los tres perfiles conocidos.
func (r Rol) Valido() bool {
	switch r {
	case RolPersonal, RolComercial, RolGerencia:
		return true
	}
	return false
}

// EnConjunto indica si el rol pertenece al conjunto permitido.
// Un conjunto vacío significa "cualquier rol autenticado".
func (r Rol) EnConjunto(permitidos []Rol) bool {
	if len(permitidos) == 0 {
		return true
	}
	for _, p := range permitidos {
		if r == p {
			return true
		}
	}
	return false
}
