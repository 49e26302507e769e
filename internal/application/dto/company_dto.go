package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. El manager será el
// usuario autenticado que hace la petición.
type CreateCompanyRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	TaxID string `json:"tax_id" validate:"required,min=1,max=14"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	TaxID *string `json:"tax_id" validate:"omitempty,min=1,max=14"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
