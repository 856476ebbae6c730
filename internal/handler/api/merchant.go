package api

import (
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

type MerchantHandler struct {
	merchantQueries  queries.MerchantQueries
	merchantCommands commands.MerchantCommands
	bookingQueries   queries.BookingQueries
}

func NewMerchantHandler(
	merchantQueries queries.MerchantQueries,
	merchantCommands commands.MerchantCommands,
	bookingQueries queries.BookingQueries,
) *MerchantHandler {
	return &MerchantHandler{
		merchantQueries:  merchantQueries,
		merchantCommands: merchantCommands,
		bookingQueries:   bookingQueries,
	}
}

// @Summary List merchants
// @Description All merchants in seed order
// @Tags merchants
// @Produce json
// @Success 200 {array} resdto.MerchantResponse
// @Router /merchants [get]
func (h *MerchantHandler) List(c *gin.Context) {
	views, err := h.merchantQueries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMerchantViews(views))
}

// @Summary Get merchant
// @Description Merchant detail with its current service catalog
// @Tags merchants
// @Produce json
// @Param id path string true "Merchant ID"
// @Success 200 {object} resdto.MerchantResponse
// @Failure 404 {object} map[string]string
// @Router /merchants/{id} [get]
func (h *MerchantHandler) Get(c *gin.Context) {
	view, err := h.merchantQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMerchantView(*view))
}

// @Summary Replace merchant services
// @Description Atomically replace the merchant's full service catalog
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Param request body reqdto.ReplaceServicesRequest true "Replacement catalog"
// @Success 200 {object} resdto.MerchantResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /merchants/{id}/services [put]
func (h *MerchantHandler) ReplaceServices(c *gin.Context) {
	principal, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("no principal on context"), "Internal server error")
		return
	}

	var req reqdto.ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.merchantCommands.ReplaceServices(c.Request.Context(), c.Param("id"), req.ToInputs(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMerchantView(*view))
}

// @Summary Merchant bookings
// @Description Bookings for one merchant, newest first
// @Tags merchants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Router /merchants/{id}/bookings [get]
func (h *MerchantHandler) Bookings(c *gin.Context) {
	principal, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("no principal on context"), "Internal server error")
		return
	}

	merchantID := c.Param("id")
	if !canViewMerchantData(principal, merchantID) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("merchant data is scoped to its owner"), "Insufficient permissions")
		return
	}

	views, err := h.bookingQueries.ListByMerchant(c.Request.Context(), merchantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
