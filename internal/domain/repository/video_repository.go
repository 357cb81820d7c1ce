package repository

import "github.com/profissaovlog/profissaovlog-api/internal/domain/entity"

// VideoRepository defines keyed storage for videos. GetAll and GetByUser
// return videos in insertion order; listings derived from them must keep
// that order.
type VideoRepository interface {
	Create(v *entity.Video) error
	GetByID(id int) (*entity.Video, error)
	GetByUser(userID int) ([]*entity.Video, error)
	GetAll() ([]*entity.Video, error)
}
