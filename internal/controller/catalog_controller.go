package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/service"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(s *service.CatalogService) *CatalogController {
	return &CatalogController{Service: s}
}

// GET /products
func (ctl *CatalogController) ListProducts(c *gin.Context) {
	if categoryID := c.Query("category"); categoryID != "" {
		products, err := ctl.Service.ListProductsByCategory(c.Request.Context(), categoryID)
		if err != nil {
			respondError(c, err)
			return
		}
		httpx.JSON(c, http.StatusOK, products, "ok")
		return
	}

	products, err := ctl.Service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, products, "ok")
}

// GET /products/:id
func (ctl *CatalogController) GetProduct(c *gin.Context) {
	p, err := ctl.Service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, p, "ok")
}

// POST /admin/products
func (ctl *CatalogController) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := ctl.Service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusCreated, p, "product created")
}

// PUT /admin/products/:id
func (ctl *CatalogController) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := ctl.Service.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, p, "product updated")
}

// DELETE /admin/products/:id
func (ctl *CatalogController) DeleteProduct(c *gin.Context) {
	if err := ctl.Service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, nil, "product deleted")
}

// GET /categories
func (ctl *CatalogController) ListCategories(c *gin.Context) {
	cats, err := ctl.Service.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cats, "ok")
}

// POST /admin/categories
func (ctl *CatalogController) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := ctl.Service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusCreated, cat, "category created")
}

// PUT /admin/categories/:id
func (ctl *CatalogController) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := ctl.Service.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, cat, "category updated")
}

// DELETE /admin/categories/:id
func (ctl *CatalogController) DeleteCategory(c *gin.Context) {
	if err := ctl.Service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, nil, "category deleted")
}
