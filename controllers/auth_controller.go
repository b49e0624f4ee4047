package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-store/middleware"
	"hardware-store/models"
	"hardware-store/services"
)

type AuthController struct {
	auth   *services.AuthService
	carts  *services.CartService
	secure bool
}

func NewAuthController(auth *services.AuthService, carts *services.CartService, secure bool) *AuthController {
	return &AuthController{auth: auth, carts: carts, secure: secure}
}

// Login godoc
// @Summary Login
// @Description Sign in with email and password. The session token is set in the httpOnly "token" cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !ctrl.auth.Bypass() {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			errorJSON(c, http.StatusBadRequest, "Invalid request", err)
			return
		}
	}

	user, token, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrCredentialsRequired):
		errorJSON(c, http.StatusBadRequest, "Email y contraseña son requeridos", nil)
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		errorJSON(c, http.StatusUnauthorized, "Credenciales inválidas", nil)
		return
	case err != nil:
		log.Printf("Login failed: %v", err)
		errorJSON(c, http.StatusInternalServerError, "Error interno del servidor", nil)
		return
	}

	middleware.SetSessionCookie(c, token, ctrl.auth.TokenTTL(), ctrl.secure)
	ctrl.mergeAnonymousCart(c, user)

	c.JSON(http.StatusOK, models.SessionResponse{User: user})
}

func (ctrl *AuthController) mergeAnonymousCart(c *gin.Context, user *models.User) {
	if ctrl.carts == nil {
		return
	}
	cartID, err := c.Cookie(middleware.CartCookie)
	if err != nil || cartID == "" {
		return
	}
	ctrl.carts.Merge(c.Request.Context(), middleware.AnonCartOwner(cartID), middleware.UserCartOwner(user.ID))
}

// Logout godoc
// @Summary Logout
// @Description Clears the session cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, ctrl.secure)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

// Me godoc
// @Summary Current session
// @Description Returns the signed-in user or null. With DEV_AUTH_BYPASS on it reports the demo admin.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		token, _ := c.Cookie(middleware.SessionCookie)
		user, _ = ctrl.auth.Me(token)
	}
	c.JSON(http.StatusOK, models.SessionResponse{User: user})
}
