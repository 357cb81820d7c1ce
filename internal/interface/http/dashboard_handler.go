package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/application"
	"github.com/profissaovlog/profissaovlog-api/internal/interface/middleware"
	"github.com/profissaovlog/profissaovlog-api/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.CommerceService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.CommerceService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// Professional returns the caller's videos with every purchase and
// rating on them, for the sales and review breakdown.
func (h *DashboardHandler) Professional(c *gin.Context) {
	dashboard, err := h.Svc.ProfessionalDashboard(c.GetInt(middleware.CtxUserIDKey))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch dashboard data", nil)
		return
	}
	response.Success(c, http.StatusOK, dashboard, "professional dashboard", nil)
}

// Student returns the caller's purchases joined with video views plus
// their own ratings.
func (h *DashboardHandler) Student(c *gin.Context) {
	dashboard, err := h.Svc.StudentDashboard(c.GetInt(middleware.CtxUserIDKey))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch dashboard data", nil)
		return
	}
	response.Success(c, http.StatusOK, dashboard, "student dashboard", nil)
}
