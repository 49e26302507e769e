package usecase_test

import (
	"github.com/jhoicas/restaurantes-api/internal/domain"
	"github.com/jhoicas/restaurantes-api/internal/domain/entity"
	"github.com/jhoicas/restaurantes-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Reproducen el contrato
// de los adaptadores reales: (nil, nil) cuando no hay fila, copias de los
// snapshots (nunca se comparte el puntero interno) y constraints únicas en
// Create/Update como respaldo de los pre-chequeos.

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.CompanyRepository    = (*fakeCompanyRepo)(nil)
	_ repository.RestaurantRepository = (*fakeRestaurantRepo)(nil)
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range f.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entity.Company{}}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	for _, ex := range f.companies {
		if ex.TaxID == c.TaxID {
			return domain.ErrTaxIDAlreadyExists
		}
	}
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.TaxID == taxID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range f.companies {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeCompanyRepo) ListByManager(managerID string) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range f.companies {
		if c.ManagerID == managerID {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	for _, ex := range f.companies {
		if ex.ID != c.ID && ex.TaxID == c.TaxID {
			return domain.ErrTaxIDAlreadyExists
		}
	}
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) Delete(id string) error {
	delete(f.companies, id)
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[string]*entity.Restaurant
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{restaurants: map[string]*entity.Restaurant{}}
}

func (f *fakeRestaurantRepo) Create(r *entity.Restaurant) error {
	cp := *r
	f.restaurants[r.ID] = &cp
	return nil
}

func (f *fakeRestaurantRepo) GetByID(id string) (*entity.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRestaurantRepo) List(limit, offset int) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range f.restaurants {
		cp := *r
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeRestaurantRepo) ListByCreator(creatorID string) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range f.restaurants {
		if r.CreatorID == creatorID {
			cp := *r
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeRestaurantRepo) ListByCompany(companyID string) ([]*entity.Restaurant, error) {
	var list []*entity.Restaurant
	for _, r := range f.restaurants {
		if r.CompanyID == companyID {
			cp := *r
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeRestaurantRepo) Update(r *entity.Restaurant) error {
	cp := *r
	f.restaurants[r.ID] = &cp
	return nil
}

func (f *fakeRestaurantRepo) Delete(id string) error {
	delete(f.restaurants, id)
	return nil
}
