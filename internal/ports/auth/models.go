package auth

// Role es el puesto del usuario dentro de la cadena.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleMesero     Role = "mesero"
	RoleTortillero Role = "tortillero"
	RoleLosero     Role = "losero"
	RoleCocinero   Role = "cocinero"
)

// Branch es la sucursal a la que pertenece el usuario.
type Branch string

const (
	BranchSanPedro   Branch = "San Pedro"
	BranchLasQuintas Branch = "Las Quintas"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
}
