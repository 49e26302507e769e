// Package authz contiene las reglas de propiedad sobre empresas y
// restaurantes. Los predicados son puros: reciben snapshots ya cargados y no
// consultan persistencia; el caso de uso hace los lookups explícitos antes
// (y reporta "no encontrado" antes de evaluar permisos).
package authz

import "github.com/jhoicas/restaurantes-api/internal/domain/entity"

// CanManageCompany informa si userID puede editar o eliminar la empresa.
// Solo el manager tiene autoridad; no hay delegación.
func CanManageCompany(userID string, company *entity.Company) bool {
	if company == nil {
		return false
	}
	return company.ManagerID == userID
}

// CanManageRestaurant informa si userID puede editar o eliminar el
// restaurante. Autoridad en dos niveles: el creador directo O el manager de
// la empresa dueña. Se evalúa sobre los valores almacenados al momento de la
// petición, no sobre los de creación.
func CanManageRestaurant(userID string, restaurant *entity.Restaurant, company *entity.Company) bool {
	if restaurant == nil {
		return false
	}
	if restaurant.CreatorID == userID {
		return true
	}
	return CanManageCompany(userID, company)
}
