package handlers

import (
	"net/http"

	"video_studio/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Account payload"
// @Success      201  {object}  map[string]interface{}  "user, token"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.SignUp(c.Request.Context(), service.SignUpParams{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		h.serviceError(c, "auth_sign_up_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "user, token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.serviceError(c, "auth_login_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/me [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	user, err := h.services.CurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.serviceError(c, "auth_get_me_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// @Summary      Log out
// @Description  Stateless tokens: the server keeps no session, so logout is a client-side discard. The token stays valid until it expires.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [post]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
