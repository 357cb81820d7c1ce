package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	repo "github.com/profissaovlog/profissaovlog-api/internal/domain/repository"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

var (
	ErrVideoNotFound        = errors.New("video not found")
	ErrProfessionalNotFound = errors.New("professional not found")
)

// CatalogService computes the denormalized read views over the store:
// videos joined with category, owner summary, and rating stats, plus the
// per-professional rollups. Views are recomputed on every read; at this
// scale caching would only buy invalidation bugs.
type CatalogService struct {
	Users         repo.UserRepository
	Categories    repo.CategoryRepository
	Videos        repo.VideoRepository
	Ratings       repo.RatingRepository
	Logger        *logrus.Logger
	GCS           *storage.Client
	GCSBucket     string
	ES            *elasticsearch.Client
	ESVideosIndex string
}

func NewCatalogService(users repo.UserRepository, categories repo.CategoryRepository, videos repo.VideoRepository, ratings repo.RatingRepository, logger *logrus.Logger, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esVideosIndex string) *CatalogService {
	return &CatalogService{
		Users:         users,
		Categories:    categories,
		Videos:        videos,
		Ratings:       ratings,
		Logger:        logger,
		GCS:           gcs,
		GCSBucket:     gcsBucket,
		ES:            es,
		ESVideosIndex: esVideosIndex,
	}
}

func (s *CatalogService) AllCategories() ([]*entity.Category, error) {
	return s.Categories.GetAll()
}

// VideoWithDetails resolves a single video view. A dangling category or
// owner reference yields ErrVideoNotFound, same as a missing video.
func (s *CatalogService) VideoWithDetails(id int) (*entity.VideoWithDetails, error) {
	v, err := s.Videos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVideoNotFound
	}
	view, err := s.videoView(v)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrVideoNotFound
	}
	return view, nil
}

// VideosWithDetails lists video views in store insertion order,
// optionally filtered by category. Videos with dangling references are
// silently dropped from the listing.
func (s *CatalogService) VideosWithDetails(categoryID *int) ([]entity.VideoWithDetails, error) {
	videos, err := s.Videos.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.VideoWithDetails, 0, len(videos))
	for _, v := range videos {
		if categoryID != nil && v.CategoryID != *categoryID {
			continue
		}
		view, err := s.videoView(v)
		if err != nil {
			return nil, err
		}
		if view != nil {
			out = append(out, *view)
		}
	}
	return out, nil
}

// videoView joins one video with its category, owner summary, and rating
// stats. Returns (nil, nil) when a reference dangles so listings can
// skip the video without treating it as a failure.
func (s *CatalogService) videoView(v *entity.Video) (*entity.VideoWithDetails, error) {
	category, err := s.Categories.GetByID(v.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	owner, err := s.Users.GetByID(v.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	ratings, err := s.Ratings.GetByVideo(v.ID)
	if err != nil {
		return nil, err
	}
	var average float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(ratings))
	}
	return &entity.VideoWithDetails{
		Video:    *v,
		Category: *category,
		Professional: entity.ProfessionalSummary{
			ID:           owner.ID,
			Name:         owner.Name,
			Experience:   owner.Experience,
			ProfileImage: owner.ProfileImage,
		},
		AverageRating: average,
		RatingCount:   len(ratings),
	}, nil
}

type CreateVideoInput struct {
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL *string
	Price        float64
	Duration     int
	UserID       int
	CategoryID   int
}

// CreateVideo stores a new video and, when search is configured, indexes
// it for title/description queries.
func (s *CatalogService) CreateVideo(ctx context.Context, in CreateVideoInput) (*entity.Video, error) {
	v := &entity.Video{
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Price:        in.Price,
		Duration:     in.Duration,
		UserID:       in.UserID,
		CategoryID:   in.CategoryID,
	}
	if err := s.Videos.Create(v); err != nil {
		return nil, err
	}
	_ = s.indexVideo(ctx, v)
	return v, nil
}

// ProfessionalWithVideos resolves one professional with their catalog.
// The rollup average counts only videos that have ratings; unrated
// videos are excluded from the mean, not treated as zero.
func (s *CatalogService) ProfessionalWithVideos(id int) (*entity.ProfessionalWithVideos, error) {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsProfessional() {
		return nil, ErrProfessionalNotFound
	}
	return s.professionalView(u)
}

// AllProfessionalsWithVideos lists every professional in store insertion
// order with the same per-professional rollup.
func (s *CatalogService) AllProfessionalsWithVideos() ([]entity.ProfessionalWithVideos, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.ProfessionalWithVideos, 0)
	for _, u := range users {
		if !u.IsProfessional() {
			continue
		}
		view, err := s.professionalView(u)
		if err != nil {
			return nil, err
		}
		out = append(out, *view)
	}
	return out, nil
}

func (s *CatalogService) professionalView(u *entity.User) (*entity.ProfessionalWithVideos, error) {
	all, err := s.VideosWithDetails(nil)
	if err != nil {
		return nil, err
	}
	videos := make([]entity.VideoWithDetails, 0)
	for _, v := range all {
		if v.Professional.ID == u.ID {
			videos = append(videos, v)
		}
	}
	var total float64
	rated := 0
	for _, v := range videos {
		if v.AverageRating > 0 {
			total += v.AverageRating
			rated++
		}
	}
	var average float64
	if rated > 0 {
		average = total / float64(rated)
	}
	return &entity.ProfessionalWithVideos{
		User:          *u,
		Videos:        videos,
		AverageRating: average,
	}, nil
}

// UploadThumbnail stores an image under thumbnails/<userID>/ in the
// configured bucket and returns its public URL.
func (s *CatalogService) UploadThumbnail(ctx context.Context, userID int, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("thumbnails", strconv.Itoa(userID), uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
}

func (s *CatalogService) indexVideo(ctx context.Context, v *entity.Video) error {
	if s.ES == nil || s.ESVideosIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          v.ID,
		"title":       v.Title,
		"description": v.Description,
		"price":       v.Price,
		"duration":    v.Duration,
		"user_id":     v.UserID,
		"category_id": v.CategoryID,
		"created_at":  v.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESVideosIndex, DocumentID: strconv.Itoa(v.ID), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
	return nil
}

// SearchVideos runs a multi_match query over indexed titles and
// descriptions. Returns an empty result set when search is unconfigured.
func (s *CatalogService) SearchVideos(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESVideosIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESVideosIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
