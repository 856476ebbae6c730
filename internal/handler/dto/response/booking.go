package response

import (
	"time"

	"toaigo/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID             uuid.UUID        `json:"id"`
	MerchantID     string           `json:"merchantId"`
	Merchant       MerchantResponse `json:"merchant"`
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	Guests         int              `json:"guests"`
	Notes          string           `json:"notes"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	ServiceName    string           `json:"serviceName"`
	BookingCost    float64          `json:"bookingCost"`
	Commission     float64          `json:"commission"`
	MerchantPayout float64          `json:"merchantPayout"`
}

func FromBookingView(v queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:             v.ID,
		MerchantID:     v.MerchantID,
		Merchant:       FromMerchantView(v.Merchant),
		Date:           v.Date,
		Time:           v.Time,
		Guests:         v.Guests,
		Notes:          v.Notes,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		ServiceName:    v.ServiceName,
		BookingCost:    v.BookingCost,
		Commission:     v.Commission,
		MerchantPayout: v.MerchantPayout,
	}
}

func FromBookingViews(vs []queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}
