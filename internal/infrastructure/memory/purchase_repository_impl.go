package memory

import (
	"sync"
	"time"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

type PurchaseRepository struct {
	mu        sync.RWMutex
	purchases map[int]*entity.Purchase
	order     []int
	nextID    int
}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{purchases: make(map[int]*entity.Purchase), nextID: 1}
}

func (r *PurchaseRepository) Create(p *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	r.purchases[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *PurchaseRepository) GetByUser(userID int) ([]*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Purchase
	for _, id := range r.order {
		if p := r.purchases[id]; p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PurchaseRepository) GetByUserAndVideo(userID, videoID int) (*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.purchases[id]; p.UserID == userID && p.VideoID == videoID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *PurchaseRepository) GetByVideos(videoIDs []int) ([]*entity.Purchase, error) {
	wanted := make(map[int]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Purchase
	for _, id := range r.order {
		if p := r.purchases[id]; hasID(wanted, p.VideoID) {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)
