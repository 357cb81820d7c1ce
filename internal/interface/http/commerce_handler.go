package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/application"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/response"
	"github.com/profissaovlog/profissaovlog-api/pkg/validation"
)

type CommerceHandler struct {
	Svc    *application.CommerceService
	Logger *logrus.Logger
}

func NewCommerceHandler(svc *application.CommerceService, logger *logrus.Logger) *CommerceHandler {
	return &CommerceHandler{Svc: svc, Logger: logger}
}

type createPurchaseRequest struct {
	VideoID       int     `json:"videoId" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

type submitRatingRequest struct {
	VideoID int     `json:"videoId" binding:"required"`
	Rating  int     `json:"rating" binding:"required,stars"`
	Comment *string `json:"comment"`
}

// CreatePurchase records a purchase for the authenticated student.
// Unknown videos 404; repeat purchases of the same video 400.
func (h *CommerceHandler) CreatePurchase(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid purchase data", validation.ToDetails(err))
		return
	}
	purchase, err := h.Svc.CreatePurchase(application.CreatePurchaseInput{
		UserID:        c.GetInt(middleware.CtxUserIDKey),
		VideoID:       req.VideoID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrVideoNotFound):
			response.Error(c, http.StatusNotFound, "video not found", nil)
		case errors.Is(err, application.ErrAlreadyPurchased):
			response.Error(c, http.StatusBadRequest, "video already purchased", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create purchase", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, purchase, "purchase created", nil)
}

func (h *CommerceHandler) ListUserPurchases(c *gin.Context) {
	purchases, err := h.Svc.UserPurchases(c.GetInt(middleware.CtxUserIDKey))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch purchases", nil)
		return
	}
	if purchases == nil {
		purchases = []*entity.Purchase{}
	}
	response.Success(c, http.StatusOK, purchases, "purchases", nil)
}

// SubmitRating upserts the student's rating for a purchased video.
// Unknown videos 404; rating before purchasing 403.
func (h *CommerceHandler) SubmitRating(c *gin.Context) {
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid rating data", validation.ToDetails(err))
		return
	}
	rating, err := h.Svc.SubmitRating(application.SubmitRatingInput{
		UserID:  c.GetInt(middleware.CtxUserIDKey),
		VideoID: req.VideoID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrVideoNotFound):
			response.Error(c, http.StatusNotFound, "video not found", nil)
		case errors.Is(err, application.ErrPurchaseRequired):
			response.Error(c, http.StatusForbidden, "video must be purchased before rating", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create rating", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, rating, "rating saved", nil)
}

func (h *CommerceHandler) ListVideoRatings(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid video id", nil)
		return
	}
	ratings, err := h.Svc.VideoRatings(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch ratings", nil)
		return
	}
	if ratings == nil {
		ratings = []*entity.Rating{}
	}
	response.Success(c, http.StatusOK, ratings, "ratings", nil)
}
