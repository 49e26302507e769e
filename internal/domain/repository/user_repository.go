package repository

import "github.com/jhoicas/restaurantes-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
