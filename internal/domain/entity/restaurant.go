package entity

import "time"

// Restaurant representa un restaurante. Pertenece a exactamente una empresa
// y tiene exactamente un creador; la autoridad sobre él se evalúa en
// internal/domain/authz.
type Restaurant struct {
	ID        string
	Name      string
	Place     string // ubicación en texto libre
	CreatorID string // usuario que lo creó
	CompanyID string // empresa a la que pertenece
	CreatedAt time.Time
	UpdatedAt time.Time
}
