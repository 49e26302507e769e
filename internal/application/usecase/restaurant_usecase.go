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

// RestaurantUseCase aplica reglas de negocio para restaurantes. Necesita el
// puerto de empresas porque la autoridad sobre un restaurante depende de la
// empresa dueña (lookup explícito, sin relaciones auto-cargadas).
type RestaurantUseCase struct {
	repo        repository.RestaurantRepository
	companyRepo repository.CompanyRepository
}

// NewRestaurantUseCase construye el caso de uso con sus puertos de persistencia.
func NewRestaurantUseCase(repo repository.RestaurantRepository, companyRepo repository.CompanyRepository) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un restaurante bajo una empresa. La empresa debe existir
// (ErrCompanyNotFound) y el usuario que actúa debe ser su manager
// (ErrForbidden). El creador queda fijado al usuario que actúa.
func (uc *RestaurantUseCase) Create(actingUserID string, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	if !authz.CanManageCompany(actingUserID, company) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Place:     in.Place,
		CreatorID: actingUserID,
		CompanyID: in.CompanyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(restaurant); err != nil {
		return nil, err
	}
	return entityToRestaurantResponse(restaurant), nil
}

// GetByID obtiene un restaurante por ID. Devuelve domain.ErrRestaurantNotFound si no existe.
func (uc *RestaurantUseCase) GetByID(id string) (*dto.RestaurantResponse, error) {
	restaurant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return entityToRestaurantResponse(restaurant), nil
}

// List lista restaurantes con paginación. Lectura sin restricción de autoría.
func (uc *RestaurantUseCase) List(limit, offset int) (*dto.RestaurantListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRestaurantResponse(r))
	}
	return &dto.RestaurantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByCreator lista los restaurantes creados por un usuario.
func (uc *RestaurantUseCase) ListByCreator(creatorID string) ([]dto.RestaurantResponse, error) {
	list, err := uc.repo.ListByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRestaurantResponse(r))
	}
	return items, nil
}

// ListByCompany lista los restaurantes de una empresa.
func (uc *RestaurantUseCase) ListByCompany(companyID string) ([]dto.RestaurantResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRestaurantResponse(r))
	}
	return items, nil
}

// Update aplica un patch parcial sobre un restaurante. El lookup precede al
// chequeo de permiso. Autorizan el creador o el manager actual de la empresa
// dueña, evaluados sobre los valores almacenados al momento de la petición.
// El snapshot cargado no se muta: se persiste una copia con el patch aplicado.
func (uc *RestaurantUseCase) Update(id, actingUserID string, in dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, company, err := uc.loadForAuthz(id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageRestaurant(actingUserID, restaurant, company) {
		return nil, domain.ErrForbidden
	}
	updated := *restaurant
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Place != nil {
		updated.Place = *in.Place
	}
	updated.UpdatedAt = time.Now()
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	return entityToRestaurantResponse(&updated), nil
}

// Delete elimina un restaurante. Mismo chequeo de autoridad que Update; el
// restaurant_id del personal afiliado queda en NULL por la acción referencial
// del esquema.
func (uc *RestaurantUseCase) Delete(id, actingUserID string) error {
	restaurant, company, err := uc.loadForAuthz(id)
	if err != nil {
		return err
	}
	if !authz.CanManageRestaurant(actingUserID, restaurant, company) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// loadForAuthz carga el restaurante y su empresa dueña para evaluar autoridad.
func (uc *RestaurantUseCase) loadForAuthz(id string) (*entity.Restaurant, *entity.Company, error) {
	restaurant, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if restaurant == nil {
		return nil, nil, domain.ErrRestaurantNotFound
	}
	company, err := uc.companyRepo.GetByID(restaurant.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return restaurant, company, nil
}

func entityToRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:        r.ID,
		Name:      r.Name,
		Place:     r.Place,
		CreatorID: r.CreatorID,
		CompanyID: r.CompanyID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
