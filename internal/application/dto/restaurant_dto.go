package dto

import "time"

// CreateRestaurantRequest entrada para crear un restaurante. Solo el manager
// de la empresa referida puede crearlo; el creador será el usuario autenticado.
type CreateRestaurantRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Place     string `json:"place" validate:"required,min=1,max=500"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// UpdateRestaurantRequest entrada para actualizar un restaurante (campos opcionales).
type UpdateRestaurantRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Place *string `json:"place" validate:"omitempty,min=1,max=500"`
}

// RestaurantResponse salida de un restaurante.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Place     string    `json:"place"`
	CreatorID string    `json:"creator_id"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RestaurantListResponse lista paginada de restaurantes.
type RestaurantListResponse struct {
	Items []RestaurantResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
