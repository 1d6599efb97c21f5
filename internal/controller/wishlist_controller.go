package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
)

type WishlistController struct {
	Service *service.WishlistService
}

func NewWishlistController(s *service.WishlistService) *WishlistController {
	return &WishlistController{Service: s}
}

// GET /wishlist
func (ctl *WishlistController) Get(c *gin.Context) {
	p, _ := middleware.Principal(c)

	w, err := ctl.Service.Get(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, w, "ok")
}

// POST /wishlist/items
func (ctl *WishlistController) Add(c *gin.Context) {
	p, _ := middleware.Principal(c)

	var req dto.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	w, err := ctl.Service.Add(c.Request.Context(), p, req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, w, "item added")
}

// DELETE /wishlist/items/:productId
func (ctl *WishlistController) Remove(c *gin.Context) {
	p, _ := middleware.Principal(c)

	w, err := ctl.Service.Remove(c.Request.Context(), p, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, w, "item removed")
}
