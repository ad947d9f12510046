package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/inventory-lite/internal/application/dto"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
)

// Categorías sembradas por /api/init cuando el catálogo está vacío.
var defaultCategories = []entity.Category{
	{Name: "Electronics", Description: "Electronic devices and gadgets"},
	{Name: "Clothing", Description: "Apparel and accessories"},
	{Name: "Books", Description: "Books and educational materials"},
	{Name: "Home & Garden", Description: "Home improvement and garden supplies"},
	{Name: "Sports", Description: "Sports equipment and accessories"},
	{Name: "Health & Beauty", Description: "Health and beauty products"},
}

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out, nil
}

// Create registra una nueva categoría.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Update actualiza parcialmente una categoría. (nil, nil) si no existe.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("obtener categoría: %w", err)
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	ok, err := uc.repo.Update(category)
	if err != nil {
		return nil, fmt.Errorf("actualizar categoría: %w", err)
	}
	if !ok {
		return nil, nil
	}
	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Delete elimina una categoría; sus productos quedan sin categoría.
// Devuelve false si no existía.
func (uc *CategoryUseCase) Delete(id string) (bool, error) {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("eliminar categoría: %w", err)
	}
	return ok, nil
}

// SeedDefaults siembra el catálogo inicial de categorías solo si está vacío.
// Idempotente: llamadas posteriores no duplican nada.
func (uc *CategoryUseCase) SeedDefaults() (bool, error) {
	existing, err := uc.repo.List()
	if err != nil {
		return false, fmt.Errorf("verificar categorías: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}
	for _, c := range defaultCategories {
		category := c
		category.ID = uuid.New().String()
		category.CreatedAt = time.Now().UTC()
		if err := uc.repo.Create(&category); err != nil {
			return false, fmt.Errorf("sembrar categoría %q: %w", category.Name, err)
		}
	}
	return true, nil
}
