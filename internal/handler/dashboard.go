package handler

import (
	"errors"
	"net/http"

	"fundflow/internal/dto"
	"fundflow/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetDonations(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	donations, err := h.dashboardService.Donations(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, donations)
}

func (h *DashboardHandler) AddDonation(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	var req dto.AddDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	donation, err := h.dashboardService.AddDonation(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, donation)
}

func (h *DashboardHandler) GetGoals(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	goals, err := h.dashboardService.Goals(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, goals)
}

func (h *DashboardHandler) AddGoal(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	var req dto.AddGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	goal, err := h.dashboardService.AddGoal(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusCreated, goal)
}

func (h *DashboardHandler) DeleteGoal(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	if err := h.dashboardService.DeleteGoal(ctx, userID, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "goal not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
