package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
)

type OrderController struct {
	Service *service.OrderService
}

func NewOrderController(s *service.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /checkout — requires token
func (ctl *OrderController) Checkout(c *gin.Context) {
	p, _ := middleware.Principal(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := ctl.Service.Checkout(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusCreated, order, "order placed")
}

// GET /orders/mine
func (ctl *OrderController) GetMyOrders(c *gin.Context) {
	p, _ := middleware.Principal(c)

	orders, err := ctl.Service.GetMine(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, orders, "ok")
}

// GET /orders/:orderId — owner or admin
func (ctl *OrderController) GetOrder(c *gin.Context) {
	p, _ := middleware.Principal(c)

	order, err := ctl.Service.GetForCaller(c.Request.Context(), c.Param("orderId"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, order, "ok")
}

// POST /orders/:orderId/pay — owner or admin
func (ctl *OrderController) PayOrder(c *gin.Context) {
	p, _ := middleware.Principal(c)

	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := ctl.Service.ApplyPayment(c.Request.Context(), c.Param("orderId"), p, req.PaymentResult)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, order, "payment recorded")
}

// PATCH /admin/orders/:orderId/status — admin only
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := ctl.Service.ApplyStatusUpdate(c.Request.Context(), c.Param("orderId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, order, "status updated")
}

// GET /admin/orders — admin only
func (ctl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctl.Service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, orders, "ok")
}

// GET /admin/orders/status/:status — admin only
func (ctl *OrderController) GetOrdersByStatus(c *gin.Context) {
	orders, err := ctl.Service.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, orders, "ok")
}
