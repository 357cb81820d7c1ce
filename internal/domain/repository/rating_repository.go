package repository

import "github.com/profissaovlog/profissaovlog-api/internal/domain/entity"

// RatingRepository defines keyed storage for ratings. Update replaces
// the stars and comment of an existing rating and returns ErrNotFound
// when the id is missing; that path indicates caller misuse since the
// commerce service only updates ratings it just looked up.
type RatingRepository interface {
	Create(r *entity.Rating) error
	Update(id int, stars int, comment *string) (*entity.Rating, error)
	GetByUser(userID int) ([]*entity.Rating, error)
	GetByVideo(videoID int) ([]*entity.Rating, error)
	GetByVideos(videoIDs []int) ([]*entity.Rating, error)
	GetByUserAndVideo(userID, videoID int) (*entity.Rating, error)
}
