package entity

// User representa un usuario interno del sistema. El campo Password se conserva
// tal cual viene del esquema (texto plano); ninguna ruta HTTP lo consulta.
type User struct {
	ID       string
	Username string
	Password string
}
