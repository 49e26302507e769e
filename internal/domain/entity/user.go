package entity

import "time"

// User representa un usuario del sistema. Puede administrar cero o más
// empresas (como manager), haber creado cero o más restaurantes y pertenecer
// opcionalmente al personal de un restaurante (RestaurantID).
type User struct {
	ID           string
	Name         string
	Email        string  // único, se guarda tal cual (sensible a mayúsculas)
	PasswordHash string  // bcrypt hash, nunca plano en dominio después de persistir
	RestaurantID *string // nil = sin afiliación de personal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
