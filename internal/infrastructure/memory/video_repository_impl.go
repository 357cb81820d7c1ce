package memory

import (
	"sync"
	"time"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

type VideoRepository struct {
	mu     sync.RWMutex
	videos map[int]*entity.Video
	order  []int
	nextID int
}

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{videos: make(map[int]*entity.Video), nextID: 1}
}

func (r *VideoRepository) Create(v *entity.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	v.CreatedAt = time.Now()
	r.videos[v.ID] = v
	r.order = append(r.order, v.ID)
	return nil
}

func (r *VideoRepository) GetByID(id int) (*entity.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.videos[id], nil
}

func (r *VideoRepository) GetByUser(userID int) ([]*entity.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Video
	for _, id := range r.order {
		if v := r.videos[id]; v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *VideoRepository) GetAll() ([]*entity.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Video, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.videos[id])
	}
	return out, nil
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
