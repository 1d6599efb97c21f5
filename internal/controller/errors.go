package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/httpx"
	"storefront-service/internal/repository"
	"storefront-service/internal/service"
)

// respondError maps business errors onto the envelope. Unanticipated errors
// are masked and logged server-side.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		httpx.Error(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrInvalidLogin):
		httpx.Error(c, http.StatusUnauthorized, service.ErrInvalidLogin.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, repository.ErrDuplicate):
		httpx.Error(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		httpx.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
