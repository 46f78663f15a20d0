// Package producttest provides an in-memory ProductRepository for tests.
package producttest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/tair/storefront/internal/product/domain"
)

// FakeRepository is a map-backed domain.ProductRepository
type FakeRepository struct {
	mu       sync.Mutex
	products map[uint]domain.Product
	nextID   uint
	Err      error
}

// NewFakeRepository returns a repository holding products; zero ids are assigned
func NewFakeRepository(products ...domain.Product) *FakeRepository {
	r := &FakeRepository{products: map[uint]domain.Product{}}
	for i := range products {
		r.Create(context.Background(), &products[i])
	}
	return r
}

func (r *FakeRepository) Create(_ context.Context, products ...*domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, p := range products {
		if p.ID == 0 {
			r.nextID++
			p.ID = r.nextID
		} else if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.products[p.ID] = *p
	}
	return nil
}

func (r *FakeRepository) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *FakeRepository) FindByIDs(_ context.Context, ids []uint) ([]domain.Product, error) {
	return r.filter(func(p domain.Product) bool { return slices.Contains(ids, p.ID) })
}

func (r *FakeRepository) FindAll(_ context.Context) ([]domain.Product, error) {
	return r.filter(func(domain.Product) bool { return true })
}

func (r *FakeRepository) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	return r.filter(func(p domain.Product) bool { return p.Category == category })
}

func (r *FakeRepository) Search(_ context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(query)
	return r.filter(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

func (r *FakeRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.products)), nil
}

func (r *FakeRepository) DecrementStock(_ context.Context, id uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Stock = max(p.Stock-quantity, 0)
	r.products[id] = p
	return nil
}

func (r *FakeRepository) filter(keep func(domain.Product) bool) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []domain.Product
	for _, p := range r.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b domain.Product) int { return int(a.ID) - int(b.ID) })
	return out, nil
}
