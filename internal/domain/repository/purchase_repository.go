package repository

import "github.com/profissaovlog/profissaovlog-api/internal/domain/entity"

// PurchaseRepository defines keyed storage for purchases.
// GetByUserAndVideo backs both the duplicate-purchase check and the
// rating eligibility gate; it returns (nil, nil) when no purchase exists.
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	GetByUser(userID int) ([]*entity.Purchase, error)
	GetByUserAndVideo(userID, videoID int) (*entity.Purchase, error)
	GetByVideos(videoIDs []int) ([]*entity.Purchase, error)
}
