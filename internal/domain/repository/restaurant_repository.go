package repository

import "github.com/jhoicas/restaurantes-api/internal/domain/entity"

// RestaurantRepository puerto de persistencia para restaurantes.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type RestaurantRepository interface {
	Create(restaurant *entity.Restaurant) error
	GetByID(id string) (*entity.Restaurant, error)
	List(limit, offset int) ([]*entity.Restaurant, error)
	ListByCreator(creatorID string) ([]*entity.Restaurant, error)
	ListByCompany(companyID string) ([]*entity.Restaurant, error)
	Update(restaurant *entity.Restaurant) error
	Delete(id string) error
}
