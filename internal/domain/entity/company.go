package entity

import "time"

// Company representa una empresa del sistema. Tiene exactamente un manager
// en todo momento y cero o más restaurantes.
type Company struct {
	ID        string
	Name      string
	TaxID     string // identificación tributaria, única entre todas las empresas
	ManagerID string // usuario que controla la empresa
	CreatedAt time.Time
	UpdatedAt time.Time
}
