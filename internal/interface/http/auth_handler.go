package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/movie-review-api/internal/application"
	"github.com/oksasatya/movie-review-api/internal/interface/middleware"
	"github.com/oksasatya/movie-review-api/pkg/response"
)

// AuthHandler serves registration, login and account deletion.
type AuthHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AccountService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type deleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Err(c, http.StatusConflict, "Username is already taken. Choose another username.")
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Err(c, http.StatusInternalServerError, "Server error.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User account registered!",
		"newUser": u.Username,
	})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Err(c, http.StatusUnauthorized, "Incorrect username or password. Try again!")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Err(c, http.StatusInternalServerError, "Server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// DeleteAccount DELETE /delete/:username (auth required)
// The target account comes from the path; the body re-confirms the password.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	target := c.Param("username")
	principal := middleware.Principal(c)

	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, "Password is required.")
		return
	}

	err := h.Svc.DeleteAccount(c.Request.Context(), principal.Username, target, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotAccountOwner):
			response.Err(c, http.StatusForbidden, "You do not have permission to delete this account.")
		case errors.Is(err, application.ErrUserNotFound):
			response.Err(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, application.ErrWrongPassword):
			response.Err(c, http.StatusUnauthorized, "Incorrect password.")
		default:
			h.Logger.WithError(err).WithField("username", target).Error("account deletion failed")
			response.Err(c, http.StatusInternalServerError, "Server error while deleting user.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "User account and associated reviews deleted!",
		"erasedUser": target,
	})
}
