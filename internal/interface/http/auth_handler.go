package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cashflowhq/cash-flow-api/internal/application/auth"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
	"github.com/cashflowhq/cash-flow-api/pkg/response"
	"github.com/cashflowhq/cash-flow-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *auth.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *auth.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func tokenMeta(pair auth.TokenPair) map[string]any {
	return map[string]any{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Fail(c, apperrors.StatusOf(err), "registration failed", err.Error())
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"user":         toUserView(u),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "registered", tokenMeta(pair))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"user":         toUserView(u),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "login successful", tokenMeta(pair))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	pair, err := h.Svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "token refreshed", tokenMeta(pair))
}
