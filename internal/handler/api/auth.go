package api

import (
	"errors"
	"net/http"

	reqdto "toaigo/internal/handler/dto/request"
	resdto "toaigo/internal/handler/dto/response"
	"toaigo/internal/handler/httperr"
	"toaigo/internal/handler/middleware"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// @Summary Login
// @Description Demo login: pick a seeded user by id, receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown user")
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        resdto.FromUserView(result.User),
	})
}

// @Summary Current user
// @Description Return the authenticated user from the session token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no principal on context"), "User not authenticated")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(queries.NewUserView(principal)))
}
