package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrRestaurantNotFound = errors.New("restaurante no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrTaxIDAlreadyExists = errors.New("el tax_id ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
