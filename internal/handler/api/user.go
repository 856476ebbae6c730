package api

import (
	"net/http"

	resdto "toaigo/internal/handler/dto/response"
	"toaigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userQueries queries.UserQueries
}

func NewUserHandler(userQueries queries.UserQueries) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
	}
}

// @Summary List users
// @Description Seeded users for the pick-a-user login screen
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.userQueries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}
