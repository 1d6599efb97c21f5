package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/dto"
	"storefront-service/internal/httpx"
	"storefront-service/internal/middleware"
	"storefront-service/internal/service"
)

type AuthController struct {
	Service      *service.AuthService
	CookieTTL    time.Duration
	SecureCookie bool
}

func NewAuthController(s *service.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{Service: s, CookieTTL: cookieTTL, SecureCookie: secureCookie}
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, signed, err := ctl.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.setTokenCookie(c, signed)
	httpx.JSON(c, http.StatusCreated, user, "registered")
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, signed, err := ctl.Service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.setTokenCookie(c, signed)
	httpx.JSON(c, http.StatusOK, user, "logged in")
}

// POST /auth/oauth — provider callback exchange
func (ctl *AuthController) OAuth(c *gin.Context) {
	var req dto.OAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, signed, err := ctl.Service.OAuthLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.setTokenCookie(c, signed)
	httpx.JSON(c, http.StatusOK, user, "logged in")
}

// POST /auth/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", ctl.SecureCookie, true)
	httpx.JSON(c, http.StatusOK, nil, "logged out")
}

// GET /auth/me — requires token
func (ctl *AuthController) Me(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		httpx.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := ctl.Service.Me(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	httpx.JSON(c, http.StatusOK, user, "ok")
}

func (ctl *AuthController) setTokenCookie(c *gin.Context, signed string) {
	c.SetCookie(middleware.CookieName, signed, int(ctl.CookieTTL.Seconds()), "/", "", ctl.SecureCookie, true)
}
