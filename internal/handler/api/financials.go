package api

import (
	"net/http"

	"toaigo/internal/domain/user"
	resdto "toaigo/internal/handler/dto/response"
	"toaigo/internal/handler/httperr"
	"toaigo/internal/handler/middleware"
	"toaigo/internal/pkg/errs"
	"toaigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FinancialsHandler struct {
	financialQueries queries.FinancialQueries
}

func NewFinancialsHandler(financialQueries queries.FinancialQueries) *FinancialsHandler {
	return &FinancialsHandler{
		financialQueries: financialQueries,
	}
}

// @Summary Merchant financials
// @Description Revenue, commission and payout totals over one merchant's confirmed bookings
// @Tags financials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Merchant ID"
// @Success 200 {object} resdto.FinancialSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /merchants/{id}/financials [get]
func (h *FinancialsHandler) Merchant(c *gin.Context) {
	principal, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("no principal on context"), "Internal server error")
		return
	}

	merchantID := c.Param("id")
	if !canViewMerchantData(principal, merchantID) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("merchant financials are scoped to their owner"), "Insufficient permissions")
		return
	}

	summary, err := h.financialQueries.ForMerchant(c.Request.Context(), merchantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinancialSummary(summary))
}

// @Summary Platform financials
// @Description Platform-wide totals over every confirmed booking
// @Tags financials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FinancialSummaryResponse
// @Failure 403 {object} map[string]string
// @Router /admin/financials [get]
func (h *FinancialsHandler) Platform(c *gin.Context) {
	summary, err := h.financialQueries.Platform(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinancialSummary(summary))
}

// canViewMerchantData: admins see every merchant; a merchant user only its
// own.
func canViewMerchantData(principal user.User, merchantID string) bool {
	if principal.Role == user.RoleAdmin {
		return true
	}
	return principal.OwnsMerchant(merchantID)
}
