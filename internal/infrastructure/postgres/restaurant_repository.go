package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

var _ repository.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo implementación del puerto RestaurantRepository sobre PostgreSQL.
type RestaurantRepo struct {
	pool *pgxpool.Pool
}

// NewRestaurantRepository construye el adaptador de persistencia para restaurantes.
func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepo {
	return &RestaurantRepo{pool: pool}
}

// Create persiste un nuevo restaurante.
func (r *RestaurantRepo) Create(restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, place, creator_id, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		restaurant.ID, restaurant.Name, restaurant.Place,
		restaurant.CreatorID, restaurant.CompanyID,
		restaurant.CreatedAt, restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}
	return nil
}

// GetByID obtiene un restaurante por ID.
func (r *RestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	query := `
		SELECT id, name, place, creator_id, company_id, created_at, updated_at
		FROM restaurants WHERE id = $1`
	var rest entity.Restaurant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rest.ID, &rest.Name, &rest.Place, &rest.CreatorID, &rest.CompanyID,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

// List devuelve restaurantes con paginación.
func (r *RestaurantRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, place, creator_id, company_id, created_at, updated_at
		FROM restaurants ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()
	return scanRestaurants(rows)
}

// ListByCreator devuelve los restaurantes creados por un usuario.
func (r *RestaurantRepo) ListByCreator(creatorID string) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, place, creator_id, company_id, created_at, updated_at
		FROM restaurants WHERE creator_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants by creator: %w", err)
	}
	defer rows.Close()
	return scanRestaurants(rows)
}

// ListByCompany devuelve los restaurantes de una empresa.
func (r *RestaurantRepo) ListByCompany(companyID string) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, name, place, creator_id, company_id, created_at, updated_at
		FROM restaurants WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants by company: %w", err)
	}
	defer rows.Close()
	return scanRestaurants(rows)
}

// Update actualiza un restaurante existente.
func (r *RestaurantRepo) Update(restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants SET name = $2, place = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		restaurant.ID, restaurant.Name, restaurant.Place, restaurant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

// Delete elimina un restaurante por ID. El restaurant_id del personal
// afiliado queda en NULL por la acción referencial del esquema.
func (r *RestaurantRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	return nil
}

func scanRestaurants(rows pgx.Rows) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for rows.Next() {
		var rest entity.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Place, &rest.CreatorID, &rest.CompanyID, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		list = append(list, &rest)
	}
	return list, rows.Err()
}
