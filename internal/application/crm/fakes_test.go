package crm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

// fakeStore estado en memoria compartido por los repos de prueba. Los getters
// devuelven copias, igual que lo haría la base: mutar la copia no toca el
// store hasta llamar Update.
type fakeStore struct {
	leads     map[string]entity.Lead
	customers map[string]entity.Customer
	products  map[string]entity.Product
	interests []entity.Interest
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		leads:     map[string]entity.Lead{},
		customers: map[string]entity.Customer{},
		products:  map[string]entity.Product{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.leads {
		c.leads[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	c.interests = append([]entity.Interest(nil), s.interests...)
	return c
}

// fakeTx corre el callback contra el store y restaura el snapshot si falla,
// imitando el rollback de la transacción real.
type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) Run(_ context.Context, fn func(
	leads repository.LeadRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	interests repository.InterestRepository,
) error) error {
	snapshot := t.s.clone()
	err := fn(&fakeLeads{t.s}, &fakeCustomers{t.s}, &fakeProducts{t.s}, &fakeInterests{t.s})
	if err != nil {
		*t.s = *snapshot
	}
	return err
}

type fakeLeads struct{ s *fakeStore }

func (r *fakeLeads) Create(lead *entity.Lead) error {
	r.s.leads[lead.ID] = *lead
	return nil
}

func (r *fakeLeads) GetByID(id string) (*entity.Lead, error) {
	l, ok := r.s.leads[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *fakeLeads) List(repository.LeadFilter) ([]*entity.Lead, error) {
	var list []*entity.Lead
	for _, l := range r.s.leads {
		l := l
		list = append(list, &l)
	}
	return list, nil
}

func (r *fakeLeads) Update(lead *entity.Lead) error {
	r.s.leads[lead.ID] = *lead
	return nil
}

func (r *fakeLeads) Delete(id string) error {
	delete(r.s.leads, id)
	return nil
}

type fakeCustomers struct{ s *fakeStore }

func (r *fakeCustomers) Create(customer *entity.Customer) error {
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomers) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomers) List(repository.CustomerFilter) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for _, c := range r.s.customers {
		c := c
		list = append(list, &c)
	}
	return list, nil
}

func (r *fakeCustomers) Update(customer *entity.Customer) error {
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *fakeCustomers) Delete(id string) error {
	delete(r.s.customers, id)
	return nil
}

type fakeProducts struct{ s *fakeStore }

func (r *fakeProducts) Create(product *entity.Product) error {
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProducts) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProducts) List(repository.ProductFilter) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		p := p
		list = append(list, &p)
	}
	return list, nil
}

func (r *fakeProducts) Update(product *entity.Product) error {
	r.s.products[product.ID] = *product
	return nil
}

func (r *fakeProducts) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeInterests struct{ s *fakeStore }

func (r *fakeInterests) DeleteByOwner(kind entity.OwnerKind, ownerID string) error {
	var kept []entity.Interest
	for _, row := range r.s.interests {
		if row.OwnerKind == kind && row.OwnerID == ownerID {
			continue
		}
		kept = append(kept, row)
	}
	r.s.interests = kept
	return nil
}

func (r *fakeInterests) Insert(interest *entity.Interest) error {
	r.s.interests = append(r.s.interests, *interest)
	return nil
}

func (r *fakeInterests) ListProductsByOwner(kind entity.OwnerKind, ownerID string) ([]*entity.Product, error) {
	var rows []entity.Interest
	for _, row := range r.s.interests {
		if row.OwnerKind == kind && row.OwnerID == ownerID {
			rows = append(rows, row)
		}
	}
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].Position < rows[i].Position {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	var list []*entity.Product
	for _, row := range rows {
		p := r.s.products[row.ProductID]
		list = append(list, &p)
	}
	return list, nil
}
