package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskquest/task-manager/internal/api/metrics"
	"github.com/taskquest/task-manager/internal/core/domain"
	"github.com/taskquest/task-manager/internal/core/ports"
)

// DashboardHandler serves the gamification summary: points, level and
// achievement progress derived from the caller's current task set. Nothing
// here is persisted; the summary is recomputed on every view.
type DashboardHandler struct {
	tasks ports.TaskService
}

func NewDashboardHandler(tasks ports.TaskService) *DashboardHandler {
	return &DashboardHandler{tasks: tasks}
}

// Get handles GET /api/dashboard.
//
// @Summary      Gamification summary for the caller
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.GamificationSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	summary := domain.DeriveGamification(tasks)
	metrics.DashboardLevel.Observe(float64(summary.Level))
	return c.JSON(http.StatusOK, summary)
}
