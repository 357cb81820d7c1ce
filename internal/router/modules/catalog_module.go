package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/profissaovlog/profissaovlog-api/internal/container"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	handlers "github.com/profissaovlog/profissaovlog-api/internal/interface/http"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

// CatalogModule wires the browse surface plus professional publishing.
// Public: GET /api/categories, /api/videos, /api/videos/search,
// /api/videos/:id, /api/professionals, /api/professionals/:id
// Professional only: POST /api/videos, POST /api/uploads/thumbnail
type CatalogModule struct {
	Handler *handlers.CatalogHandler
	JWT     *helpers.JWTManager
}

func NewCatalog(h *handlers.CatalogHandler, jwt *helpers.JWTManager) *CatalogModule {
	return &CatalogModule{Handler: h, JWT: jwt}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.ListCategories)
	rg.GET("/videos", m.Handler.ListVideos)
	rg.GET("/videos/search", m.Handler.SearchVideos)
	rg.GET("/videos/:id", m.Handler.GetVideo)
	rg.GET("/professionals", m.Handler.ListProfessionals)
	rg.GET("/professionals/:id", m.Handler.GetProfessional)

	pro := rg.Group("/")
	pro.Use(middleware.Auth(container.GetRedis(), m.JWT), middleware.RequireUserType(entity.UserTypeProfessional))
	{
		pro.POST("/videos", m.Handler.CreateVideo)
		pro.POST("/uploads/thumbnail", m.Handler.UploadThumbnail)
	}
}
