package repository

import "github.com/invorya/inventory-lite/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// List devuelve todas las categorías ordenadas por nombre ascendente.
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) (bool, error)
	Delete(id string) (bool, error)
}
