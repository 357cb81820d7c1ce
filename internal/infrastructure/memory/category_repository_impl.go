package memory

import (
	"sync"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[int]*entity.Category
	order      []int
	nextID     int
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[int]*entity.Category), nextID: 1}
}

func (r *CategoryRepository) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.categories[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CategoryRepository) GetByID(id int) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.categories[id], nil
}

func (r *CategoryRepository) GetAll() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.categories[id])
	}
	return out, nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
