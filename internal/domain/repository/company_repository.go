package repository

import "github.com/jhoicas/restaurantes-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para empresas.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	ListByManager(managerID string) ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
