package repository

import "github.com/profissaovlog/profissaovlog-api/internal/domain/entity"

// CategoryRepository defines keyed storage for categories. GetAll
// returns categories in insertion order.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id int) (*entity.Category, error)
	GetAll() ([]*entity.Category, error)
}
