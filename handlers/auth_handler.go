package handlers

import (
	"blogapi/helper"
	"blogapi/middleware"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Login successful", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "Identity not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(identity.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}
