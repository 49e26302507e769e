package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurantes-api/internal/application/auth"
	"github.com/jhoicas/restaurantes-api/internal/application/usecase"
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
	apphttp "github.com/jhoicas/restaurantes-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (mismo contrato que los adaptadores de postgres)
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.UserRepository       = (*memUserRepo)(nil)
	_ repository.CompanyRepository    = (*memCompanyRepo)(nil)
	_ repository.RestaurantRepository = (*memRestaurantRepo)(nil)
)

type memUserRepo struct{ users map[string]*entity.User }

func (m *memUserRepo) Create(u *entity.User) error {
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}
func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range m.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}
func (m *memUserRepo) Update(u *entity.User) error { cp := *u; m.users[u.ID] = &cp; return nil }
func (m *memUserRepo) Delete(id string) error      { delete(m.users, id); return nil }

type memCompanyRepo struct{ companies map[string]*entity.Company }

func (m *memCompanyRepo) Create(c *entity.Company) error {
	for _, ex := range m.companies {
		if ex.TaxID == c.TaxID {
			return domain.ErrTaxIDAlreadyExists
		}
	}
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}
func (m *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (m *memCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range m.companies {
		if c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *memCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range m.companies {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}
func (m *memCompanyRepo) ListByManager(managerID string) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range m.companies {
		if c.ManagerID == managerID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}
func (m *memCompanyRepo) Update(c *entity.Company) error { cp := *c; m.companies[c.ID] = &cp; return nil }
func (m *memCompanyRepo) Delete(id string) error         { delete(m.companies, id); return nil }

type memRestaurantRepo struct{ restaurants map[string]*entity.Restaurant }

func (m *memRestaurantRepo) Create(r *entity.Restaurant) error {
	cp := *r
	m.restaurants[r.ID] = &cp
	return nil
}
func (m *memRestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	r, ok := m.restaurants[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}
func (m *memRestaurantRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range m.restaurants {
		cp := *r
		list = append(list, &cp)
	}
	return list, nil
}
func (m *memRestaurantRepo) ListByCreator(creatorID string) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range m.restaurants {
		if r.CreatorID == creatorID {
			cp := *r
			list = append(list, &cp)
		}
	}
	return list, nil
}
func (m *memRestaurantRepo) ListByCompany(companyID string) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range m.restaurants {
		if r.CompanyID == companyID {
			cp := *r
			list = append(list, &cp)
		}
	}
	return list, nil
}
func (m *memRestaurantRepo) Update(r *entity.Restaurant) error {
	cp := *r
	m.restaurants[r.ID] = &cp
	return nil
}
func (m *memRestaurantRepo) Delete(id string) error { delete(m.restaurants, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testAPI struct {
	app         *fiber.App
	companyRepo *memCompanyRepo
}

func buildAPI(t *testing.T) *testAPI {
	t.Helper()
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	restaurantRepo := &memRestaurantRepo{restaurants: map[string]*entity.Restaurant{}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:       usecase.NewUserUseCase(userRepo),
		CompanyUC:    usecase.NewCompanyUseCase(companyRepo),
		RestaurantUC: usecase.NewRestaurantUseCase(restaurantRepo, companyRepo),
		JWTSecret:    testJWTSecret,
	})
	return &testAPI{app: app, companyRepo: companyRepo}
}

// do lanza una petición JSON y devuelve status y cuerpo decodificado en un map.
func (a *testAPI) do(t *testing.T, method, path, token string, body any) (int, map[string]any, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded, raw
}

func (a *testAPI) register(t *testing.T, name, email, password string) string {
	t.Helper()
	status, body, raw := a.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotContains(t, string(raw), "password", "el registro nunca devuelve la credencial")
	return body["id"].(string)
}

func (a *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	status, body, _ := a.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario end-to-end: propiedad en dos niveles con reasignación de manager
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_EscenarioPropiedadDosNiveles(t *testing.T) {
	api := buildAPI(t)

	mID := api.register(t, "Manager M", "m@teste.com", "123456")
	uID := api.register(t, "Usuario U", "u@teste.com", "123456")
	mTok := api.login(t, "m@teste.com", "123456")
	uTok := api.login(t, "u@teste.com", "123456")

	// M crea la empresa y queda como manager
	status, company, _ := api.do(t, http.MethodPost, "/api/companies", mTok, map[string]string{
		"name": "Acme", "tax_id": "12345678000123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, mID, company["manager_id"])
	companyID := company["id"].(string)

	// M crea el restaurante y queda como creador
	status, restaurant, _ := api.do(t, http.MethodPost, "/api/restaurants", mTok, map[string]string{
		"name": "Downtown", "place": "Main St", "company_id": companyID,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, mID, restaurant["creator_id"])
	restaurantID := restaurant["id"].(string)

	// U no tiene relación: el PATCH falla con 403
	status, _, _ = api.do(t, http.MethodPatch, "/api/restaurants/"+restaurantID, uTok, map[string]string{
		"name": "Downtown U",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Fuera de banda, U pasa a administrar Acme
	c, err := api.companyRepo.GetByID(companyID)
	require.NoError(t, err)
	c.ManagerID = uID
	require.NoError(t, api.companyRepo.Update(c))

	// El mismo PATCH ahora pasa
	status, updated, _ := api.do(t, http.MethodPatch, "/api/restaurants/"+restaurantID, uTok, map[string]string{
		"name": "Downtown U",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Downtown U", updated["name"])

	// El creador M conserva su autoridad directa aunque ya no administre
	status, _, _ = api.do(t, http.MethodPatch, "/api/restaurants/"+restaurantID, mTok, map[string]string{
		"place": "Second Ave",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestAPI_MutacionesRequierenToken(t *testing.T) {
	api := buildAPI(t)

	status, _, _ := api.do(t, http.MethodPost, "/api/companies", "", map[string]string{
		"name": "Acme", "tax_id": "12345678000123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = api.do(t, http.MethodPatch, "/api/companies/cualquier-id", "", map[string]string{"name": "X"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = api.do(t, http.MethodDelete, "/api/restaurants/cualquier-id", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_LecturasSonPublicas(t *testing.T) {
	api := buildAPI(t)

	status, _, _ := api.do(t, http.MethodGet, "/api/companies", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = api.do(t, http.MethodGet, "/api/restaurants", "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = api.do(t, http.MethodGet, "/api/restaurants/company/alguna-empresa", "", nil)
	assert.Equal(t, http.StatusOK, status, "filtro sin coincidencias responde 200 con lista vacía")
}

func TestAPI_NotFoundGanaSobreForbidden(t *testing.T) {
	api := buildAPI(t)

	api.register(t, "Manager M", "m@teste.com", "123456")
	tok := api.login(t, "m@teste.com", "123456")

	status, _, _ := api.do(t, http.MethodPatch, "/api/companies/id-inexistente", tok, map[string]string{"name": "X"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = api.do(t, http.MethodDelete, "/api/restaurants/id-inexistente", tok, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_RegistroDuplicadoYValidacion(t *testing.T) {
	api := buildAPI(t)

	api.register(t, "João", "joao@teste.com", "123456")

	status, _, _ := api.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": "Otro", "email": "joao@teste.com", "password": "abcdef",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _, _ = api.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": "Corto", "email": "corto@teste.com", "password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, status, "password de menos de 6 caracteres")

	status, _, _ = api.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name": "Mal", "email": "no-es-un-email", "password": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, status, "email sin sintaxis válida")
}

func TestAPI_LaCredencialNuncaSale(t *testing.T) {
	api := buildAPI(t)

	id := api.register(t, "João", "joao@teste.com", "123456")
	tok := api.login(t, "joao@teste.com", "123456")

	for _, path := range []string{"/api/users/profile", "/api/users/" + id, "/api/users"} {
		status, _, raw := api.do(t, http.MethodGet, path, tok, nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.NotContains(t, string(raw), "password", path)
		assert.NotContains(t, string(raw), "hash", path)
	}
}

func TestAPI_TaxIDDuplicado(t *testing.T) {
	api := buildAPI(t)

	api.register(t, "M", "m@teste.com", "123456")
	api.register(t, "U", "u@teste.com", "123456")
	mTok := api.login(t, "m@teste.com", "123456")
	uTok := api.login(t, "u@teste.com", "123456")

	status, _, _ := api.do(t, http.MethodPost, "/api/companies", mTok, map[string]string{
		"name": "Acme", "tax_id": "12345678000123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _, _ = api.do(t, http.MethodPost, "/api/companies", uTok, map[string]string{
		"name": "Clon", "tax_id": "12345678000123",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, body, _ := api.do(t, http.MethodGet, "/api/companies", "", nil)
	require.Equal(t, http.StatusOK, status)
	items, _ := body["items"].([]any)
	assert.Len(t, items, 1, "el conflicto no deja escritura")
}
