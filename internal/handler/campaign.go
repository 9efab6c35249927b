package handler

import (
	"errors"
	"net/http"

	"fundflow/internal/dto"
	"fundflow/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignService service.CampaignService
}

func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
	}
}

func (h *CampaignHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	userID, _ := c.Get("user_id").(string)

	var req dto.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	campaign, err := h.campaignService.Create(ctx, userID, &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	campaigns, err := h.campaignService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.campaignService.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "campaign not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *CampaignHandler) Comments(c echo.Context) error {
	ctx := c.Request().Context()

	comments, err := h.campaignService.Comments(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, comments)
}

func (h *CampaignHandler) ClearComments(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ClearCommentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.CampaignID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "campaignId is required"})
	}

	if err := h.campaignService.ClearComments(ctx, req.CampaignID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
