package memory

import (
	"sync"
	"time"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

type RatingRepository struct {
	mu      sync.RWMutex
	ratings map[int]*entity.Rating
	order   []int
	nextID  int
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{ratings: make(map[int]*entity.Rating), nextID: 1}
}

func (r *RatingRepository) Create(rt *entity.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt.ID = r.nextID
	r.nextID++
	rt.CreatedAt = time.Now()
	r.ratings[rt.ID] = rt
	r.order = append(r.order, rt.ID)
	return nil
}

// Update replaces the stars and comment of an existing rating. The id,
// author, video, and creation timestamp stay as they were.
func (r *RatingRepository) Update(id int, stars int, comment *string) (*entity.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.ratings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	existing.Rating = stars
	existing.Comment = comment
	return existing, nil
}

func (r *RatingRepository) GetByUser(userID int) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Rating
	for _, id := range r.order {
		if rt := r.ratings[id]; rt.UserID == userID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *RatingRepository) GetByVideo(videoID int) ([]*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Rating
	for _, id := range r.order {
		if rt := r.ratings[id]; rt.VideoID == videoID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *RatingRepository) GetByVideos(videoIDs []int) ([]*entity.Rating, error) {
	wanted := make(map[int]struct{}, len(videoIDs))
	for _, id := range videoIDs {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Rating
	for _, id := range r.order {
		if rt := r.ratings[id]; hasID(wanted, rt.VideoID) {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *RatingRepository) GetByUserAndVideo(userID, videoID int) (*entity.Rating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if rt := r.ratings[id]; rt.UserID == userID && rt.VideoID == videoID {
			return rt, nil
		}
	}
	return nil, nil
}

func hasID(set map[int]struct{}, id int) bool {
	_, ok := set[id]
	return ok
}

var _ repository.RatingRepository = (*RatingRepository)(nil)
