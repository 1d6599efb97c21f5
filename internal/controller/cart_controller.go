package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
)

type CartController struct {
	Service *service.CartService
}

func NewCartController(s *service.CartService) *CartController {
	return &CartController{Service: s}
}

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	p, _ := middleware.Principal(c)

	cart, err := ctl.Service.Get(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cart, "ok")
}

// POST /cart/items
func (ctl *CartController) AddItem(c *gin.Context) {
	p, _ := middleware.Principal(c)

	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := ctl.Service.AddItem(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cart, "item added")
}

// PUT /cart/items/:productId?quantity=n
func (ctl *CartController) UpdateItem(c *gin.Context) {
	p, _ := middleware.Principal(c)

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "quantity must be an integer")
		return
	}

	cart, err := ctl.Service.UpdateItem(c.Request.Context(), p, c.Param("productId"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cart, "item updated")
}

// DELETE /cart/items/:productId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	p, _ := middleware.Principal(c)

	cart, err := ctl.Service.RemoveItem(c.Request.Context(), p, c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cart, "item removed")
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	p, _ := middleware.Principal(c)

	if err := ctl.Service.Clear(c.Request.Context(), p); err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, nil, "cart cleared")
}
