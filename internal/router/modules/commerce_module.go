package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/profissaovlog/profissaovlog-api/internal/container"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	handlers "github.com/profissaovlog/profissaovlog-api/internal/interface/http"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

// CommerceModule wires purchases and ratings.
// Public: GET /api/ratings/video/:id
// Authenticated: GET /api/purchases/user
// Student only: POST /api/purchases, POST /api/ratings
type CommerceModule struct {
	Handler *handlers.CommerceHandler
	JWT     *helpers.JWTManager
}

func NewCommerce(h *handlers.CommerceHandler, jwt *helpers.JWTManager) *CommerceModule {
	return &CommerceModule{Handler: h, JWT: jwt}
}

func (m *CommerceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ratings/video/:id", m.Handler.ListVideoRatings)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/purchases/user", m.Handler.ListUserPurchases)

		student := auth.Group("/")
		student.Use(middleware.RequireUserType(entity.UserTypeStudent))
		{
			student.POST("/purchases", m.Handler.CreatePurchase)
			student.POST("/ratings", m.Handler.SubmitRating)
		}
	}
}
