package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

// UserRepository keeps users in a map with an insertion-order index so
// GetAll stays deterministic across reads.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]*entity.User
	order  []int
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int]*entity.User), nextID: 1}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id], nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if u := r.users[id]; strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if u := r.users[id]; strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetAll() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
