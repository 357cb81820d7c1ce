package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	repo "github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
)

var (
	ErrAlreadyPurchased = errors.New("video already purchased")
	ErrPurchaseRequired = errors.New("video must be purchased before rating")
)

// CommerceService owns the purchase and rating policy: one purchase per
// (student, video), ratings gated on a prior purchase, and upsert
// semantics for repeat ratings. Payment itself is simulated; the
// paymentMethod string is recorded as-is.
type CommerceService struct {
	Videos    repo.VideoRepository
	Purchases repo.PurchaseRepository
	Ratings   repo.RatingRepository
	Catalog   *CatalogService
	Logger    *logrus.Logger
}

func NewCommerceService(videos repo.VideoRepository, purchases repo.PurchaseRepository, ratings repo.RatingRepository, catalog *CatalogService, logger *logrus.Logger) *CommerceService {
	return &CommerceService{
		Videos:    videos,
		Purchases: purchases,
		Ratings:   ratings,
		Catalog:   catalog,
		Logger:    logger,
	}
}

type CreatePurchaseInput struct {
	UserID        int
	VideoID       int
	Amount        float64
	PaymentMethod string
}

// CreatePurchase records a purchase after checking the video exists and
// the student has not bought it before.
func (s *CommerceService) CreatePurchase(in CreatePurchaseInput) (*entity.Purchase, error) {
	video, err := s.Videos.GetByID(in.VideoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	existing, err := s.Purchases.GetByUserAndVideo(in.UserID, in.VideoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyPurchased
	}
	p := &entity.Purchase{
		UserID:        in.UserID,
		VideoID:       in.VideoID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
	}
	if err := s.Purchases.Create(p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": in.UserID, "video_id": in.VideoID}).Info("purchase created")
	}
	return p, nil
}

func (s *CommerceService) UserPurchases(userID int) ([]*entity.Purchase, error) {
	return s.Purchases.GetByUser(userID)
}

// UserPurchasesWithVideos joins each purchase with the full video view.
// Purchases whose video can no longer be resolved are dropped.
func (s *CommerceService) UserPurchasesWithVideos(userID int) ([]entity.PurchaseWithVideo, error) {
	purchases, err := s.Purchases.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PurchaseWithVideo, 0, len(purchases))
	for _, p := range purchases {
		video, err := s.Videos.GetByID(p.VideoID)
		if err != nil {
			return nil, err
		}
		if video == nil {
			continue
		}
		view, err := s.Catalog.videoView(video)
		if err != nil {
			return nil, err
		}
		if view == nil {
			continue
		}
		out = append(out, entity.PurchaseWithVideo{Purchase: *p, Video: *view})
	}
	return out, nil
}

type SubmitRatingInput struct {
	UserID  int
	VideoID int
	Rating  int
	Comment *string
}

// SubmitRating creates or updates the student's rating for a video. The
// student must have purchased the video first. A repeat submission
// updates the existing rating in place instead of adding a second row.
func (s *CommerceService) SubmitRating(in SubmitRatingInput) (*entity.Rating, error) {
	video, err := s.Videos.GetByID(in.VideoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	purchase, err := s.Purchases.GetByUserAndVideo(in.UserID, in.VideoID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseRequired
	}
	existing, err := s.Ratings.GetByUserAndVideo(in.UserID, in.VideoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.Ratings.Update(existing.ID, in.Rating, in.Comment)
	}
	r := &entity.Rating{
		UserID:  in.UserID,
		VideoID: in.VideoID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := s.Ratings.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *CommerceService) VideoRatings(videoID int) ([]*entity.Rating, error) {
	return s.Ratings.GetByVideo(videoID)
}

// ProfessionalDashboard bundles a professional's own videos with every
// purchase and rating on them, for the sales/revenue breakdown.
type ProfessionalDashboard struct {
	Videos    []*entity.Video    `json:"videos"`
	Purchases []*entity.Purchase `json:"purchases"`
	Ratings   []*entity.Rating   `json:"ratings"`
}

func (s *CommerceService) ProfessionalDashboard(userID int) (*ProfessionalDashboard, error) {
	videos, err := s.Videos.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	videoIDs := make([]int, 0, len(videos))
	for _, v := range videos {
		videoIDs = append(videoIDs, v.ID)
	}
	purchases, err := s.Purchases.GetByVideos(videoIDs)
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings.GetByVideos(videoIDs)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*entity.Video{}
	}
	if purchases == nil {
		purchases = []*entity.Purchase{}
	}
	if ratings == nil {
		ratings = []*entity.Rating{}
	}
	return &ProfessionalDashboard{Videos: videos, Purchases: purchases, Ratings: ratings}, nil
}

// StudentDashboard bundles a student's purchases (joined with video
// views) and their own ratings.
type StudentDashboard struct {
	Purchases []entity.PurchaseWithVideo `json:"purchases"`
	Ratings   []*entity.Rating           `json:"ratings"`
}

func (s *CommerceService) StudentDashboard(userID int) (*StudentDashboard, error) {
	purchases, err := s.UserPurchasesWithVideos(userID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []*entity.Rating{}
	}
	return &StudentDashboard{Purchases: purchases, Ratings: ratings}, nil
}
