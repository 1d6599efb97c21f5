package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/service"
)

type SettingsController struct {
	Service *service.SettingsService
}

func NewSettingsController(s *service.SettingsService) *SettingsController {
	return &SettingsController{Service: s}
}

// GET /settings
func (ctl *SettingsController) Get(c *gin.Context) {
	st, err := ctl.Service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, st, "ok")
}

// PUT /admin/settings — admin only
func (ctl *SettingsController) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	st, err := ctl.Service.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, st, "settings updated")
}
