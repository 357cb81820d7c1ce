package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/profissaovlog/profissaovlog-api/internal/container"
	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	handlers "github.com/profissaovlog/profissaovlog-api/internal/interface/http"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

// DashboardModule wires the role-specific dashboards.
// Professional only: GET /api/dashboard/professional
// Student only: GET /api/dashboard/student
type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboard(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/dashboard")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("/professional", middleware.RequireUserType(entity.UserTypeProfessional), m.Handler.Professional)
		auth.GET("/student", middleware.RequireUserType(entity.UserTypeStudent), m.Handler.Student)
	}
}
