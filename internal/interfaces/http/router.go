package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/restaurantes-api/internal/application/auth"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	RestaurantUC *usecase.RestaurantUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones y las rutas my-*/profile requieren Bearer Token. Las rutas
// fijas (my-companies, my-restaurants, company/:companyId) se registran
// antes que /:id para que Fiber no las capture como parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/register", userHandler.Register)
	users.Get("/profile", requireAuth, userHandler.Profile)
	users.Get("/", requireAuth, userHandler.List)
	users.Get("/:id", requireAuth, userHandler.GetByID)

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/my-companies", requireAuth, companyHandler.MyCompanies)
	companies.Get("/", companyHandler.List)
	companies.Post("/", requireAuth, companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", requireAuth, companyHandler.Update)
	companies.Delete("/:id", requireAuth, companyHandler.Delete)

	// Restaurants
	restaurants := api.Group("/restaurants")
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurants.Get("/my-restaurants", requireAuth, restaurantHandler.MyRestaurants)
	restaurants.Get("/company/:companyId", restaurantHandler.ByCompany)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Post("/", requireAuth, restaurantHandler.Create)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Patch("/:id", requireAuth, restaurantHandler.Update)
	restaurants.Delete("/:id", requireAuth, restaurantHandler.Delete)
}
