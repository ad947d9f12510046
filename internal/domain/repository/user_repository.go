package repository

import "github.com/invorya/inventory-lite/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Existe solo a nivel de almacenamiento; ninguna ruta lo expone.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(user *entity.User) error
}
