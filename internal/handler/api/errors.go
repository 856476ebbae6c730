package api

import (
	"errors"
	"net/http"

	"toaigo/internal/handler/httperr"
	"toaigo/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError translates the domain error taxonomy into HTTP statuses.
// NotFound → 404, validation → 422, state-machine violations → 409,
// scope/role violations → 403; anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found")
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed")
	case errors.Is(err, errs.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking status can only change while pending")
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
