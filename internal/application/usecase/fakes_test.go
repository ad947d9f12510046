package usecase

import (
	"sort"
	"strings"

	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// fakeProductRepo repositorio en memoria para los tests del caso de uso.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) List(filters repository.ProductFilters) ([]*entity.ProductWithCategory, error) {
	var out []*entity.ProductWithCategory
	for _, p := range f.products {
		if filters.Search != "" {
			s := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) && !strings.Contains(strings.ToLower(p.SKU), s) {
				continue
			}
		}
		if filters.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != filters.CategoryID) {
			continue
		}
		if filters.LowStock && p.Stock >= p.LowStockThreshold {
			continue
		}
		cp := *p
		out = append(out, &entity.ProductWithCategory{Product: cp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.ProductWithCategory, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &entity.ProductWithCategory{Product: cp}, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	cp := *product
	f.products[product.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Update(product *entity.Product) (bool, error) {
	if _, ok := f.products[product.ID]; !ok {
		return false, nil
	}
	cp := *product
	f.products[product.ID] = &cp
	return true, nil
}

func (f *fakeProductRepo) Delete(id string) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductRepo) ListLowStock() ([]*entity.ProductWithCategory, error) {
	var out []*entity.ProductWithCategory
	for _, p := range f.products {
		if p.IsActive && p.Stock < p.LowStockThreshold {
			cp := *p
			out = append(out, &entity.ProductWithCategory{Product: cp})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (f *fakeProductRepo) ListOutOfStock() ([]*entity.ProductWithCategory, error) {
	var out []*entity.ProductWithCategory
	for _, p := range f.products {
		if p.IsActive && p.Stock == 0 {
			cp := *p
			out = append(out, &entity.ProductWithCategory{Product: cp})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := f.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

// fakeCategoryRepo repositorio en memoria de categorías.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) (bool, error) {
	if _, ok := f.categories[category.ID]; !ok {
		return false, nil
	}
	cp := *category
	f.categories[category.ID] = &cp
	return true, nil
}

func (f *fakeCategoryRepo) Delete(id string) (bool, error) {
	if _, ok := f.categories[id]; !ok {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}
