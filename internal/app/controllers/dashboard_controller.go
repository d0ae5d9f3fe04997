package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/eduhub/internal/app/services"
	"github.com/yigit/eduhub/internal/middleware"
)

// DashboardController serves the admin dashboard and the relational catalog
type DashboardController struct {
	dashboardService services.DashboardService
	catalogService   services.CatalogService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, catalogService services.CatalogService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		catalogService:   catalogService,
	}
}

// Dashboard returns the platform counters
// @Summary Admin dashboard
// @Description Counts discussions, users, courses, events and comments across both stores
// @Tags admin
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} dto.ErrorResponse "Error getting dashboard data"
// @Router /api/admin/dashboard [get]
func (dc *DashboardController) Dashboard(c *gin.Context) {
	stats, err := dc.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error getting dashboard data")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListCategories returns the course categories
// @Summary List course categories
// @Tags admin
// @Produce json
// @Success 200 {array} models.Category
// @Failure 404 {object} dto.MessageResponse "No categories found."
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/listCategories [get]
func (dc *DashboardController) ListCategories(c *gin.Context) {
	categories, err := dc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err, "Error fetching categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
