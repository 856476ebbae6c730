package request

import (
	"toaigo/internal/usecase/commands"
)

type CreateBookingRequest struct {
	MerchantID string   `json:"merchantId" binding:"required"`
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	Guests     int      `json:"guests" binding:"required,min=1"`
	Notes      string   `json:"notes"`
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		MerchantID: r.MerchantID,
		Date:       r.Date,
		Time:       r.Time,
		Guests:     r.Guests,
		Notes:      r.Notes,
		ServiceIDs: r.ServiceIDs,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Confirmed Rejected"`
}
