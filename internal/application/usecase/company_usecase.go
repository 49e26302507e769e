package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurantes-api/internal/application/dto"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/authz"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas. La identidad que
// actúa llega siempre como parámetro explícito; no hay identidad ambiente.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa con el usuario que actúa como manager. Devuelve
// domain.ErrTaxIDAlreadyExists si el tax_id ya existe; el chequeo previo es
// best-effort y la constraint única de la tabla es el respaldo ante carreras.
// Cualquier usuario autenticado puede crear una empresa que va a administrar.
func (uc *CompanyUseCase) Create(actingUserID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByTaxID(in.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrTaxIDAlreadyExists
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		ManagerID: actingUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve domain.ErrCompanyNotFound si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación. Lectura sin restricción de autoría.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByManager lista las empresas administradas por un usuario.
func (uc *CompanyUseCase) ListByManager(managerID string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListByManager(managerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Update aplica un patch parcial sobre una empresa. El lookup precede al
// chequeo de permiso: un ID inexistente reporta ErrCompanyNotFound aunque
// quien pregunta tampoco tenga autoridad. Solo el manager puede editar.
// El snapshot cargado no se muta: se persiste una copia con el patch aplicado.
func (uc *CompanyUseCase) Update(id, actingUserID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	if !authz.CanManageCompany(actingUserID, company) {
		return nil, domain.ErrForbidden
	}
	updated := *company
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.TaxID != nil {
		updated.TaxID = *in.TaxID
	}
	updated.UpdatedAt = time.Now()
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(&updated), nil
}

// Delete elimina una empresa. Mismo chequeo de autoridad que Update; los
// restaurantes de la empresa caen por la acción referencial del esquema.
func (uc *CompanyUseCase) Delete(id, actingUserID string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	if !authz.CanManageCompany(actingUserID, company) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		ManagerID: c.ManagerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
