package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/application"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/response"
	"github.com/profissaovlog/profissaovlog-api/pkg/validation"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type createVideoRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	VideoURL     string  `json:"videoUrl" binding:"required,url"`
	ThumbnailURL *string `json:"thumbnailUrl" binding:"omitempty,url"`
	Price        float64 `json:"price" binding:"gte=0"`
	Duration     int     `json:"duration" binding:"required,gt=0"`
	CategoryID   int     `json:"categoryId" binding:"required"`
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Svc.AllCategories()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch categories", nil)
		return
	}
	response.Success(c, http.StatusOK, categories, "categories", nil)
}

func (h *CatalogHandler) ListVideos(c *gin.Context) {
	var categoryID *int
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid categoryId", nil)
			return
		}
		categoryID = &id
	}
	videos, err := h.Svc.VideosWithDetails(categoryID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch videos", nil)
		return
	}
	response.Success(c, http.StatusOK, videos, "videos", nil)
}

func (h *CatalogHandler) GetVideo(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid video id", nil)
		return
	}
	video, err := h.Svc.VideoWithDetails(id)
	if err != nil {
		if errors.Is(err, application.ErrVideoNotFound) {
			response.Error(c, http.StatusNotFound, "video not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to fetch video", nil)
		return
	}
	response.Success(c, http.StatusOK, video, "video", nil)
}

// CreateVideo stores a new video for the authenticated professional. The
// owner id always comes from the session, never the payload.
func (h *CatalogHandler) CreateVideo(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid video data", validation.ToDetails(err))
		return
	}
	video, err := h.Svc.CreateVideo(c.Request.Context(), application.CreateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Price:        req.Price,
		Duration:     req.Duration,
		UserID:       c.GetInt(middleware.CtxUserIDKey),
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create video", nil)
		return
	}
	response.Success(c, http.StatusCreated, video, "video created", nil)
}

func (h *CatalogHandler) SearchVideos(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchVideos(c.Request.Context(), q, size)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"query": q})
}

func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	professionals, err := h.Svc.AllProfessionalsWithVideos()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch professionals", nil)
		return
	}
	response.Success(c, http.StatusOK, professionals, "professionals", nil)
}

func (h *CatalogHandler) GetProfessional(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid professional id", nil)
		return
	}
	professional, err := h.Svc.ProfessionalWithVideos(id)
	if err != nil {
		if errors.Is(err, application.ErrProfessionalNotFound) {
			response.Error(c, http.StatusNotFound, "professional not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to fetch professional", nil)
		return
	}
	response.Success(c, http.StatusOK, professional, "professional", nil)
}

// UploadThumbnail accepts a multipart image and stores it in the
// configured bucket, returning the public URL for the video form.
func (h *CatalogHandler) UploadThumbnail(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "missing file", nil)
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer func() { _ = src.Close() }()

	url, err := h.Svc.UploadThumbnail(c.Request.Context(), c.GetInt(middleware.CtxUserIDKey), src, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("thumbnail upload failed")
		}
		response.Error(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "thumbnail uploaded", nil)
}
