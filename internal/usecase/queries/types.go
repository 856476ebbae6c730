package queries

import (
	"time"

	"toaigo/internal/domain/booking"
	"toaigo/internal/domain/merchant"
	"toaigo/internal/domain/user"

	"github.com/google/uuid"
)

// Read models (DTO for the read side). Field names mirror what the
// marketplace front-end consumes.

type ServiceView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MerchantView struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"imageUrl"`
	Services       []ServiceView     `json:"services"`
	OperatingHours map[string]string `json:"operatingHours"`
}

type UserView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	MerchantID *string `json:"merchantId,omitempty"`
}

type BookingView struct {
	ID             uuid.UUID    `json:"id"`
	MerchantID     string       `json:"merchantId"`
	Merchant       MerchantView `json:"merchant"`
	Date           string       `json:"date"`
	Time           string       `json:"time"`
	Guests         int          `json:"guests"`
	Notes          string       `json:"notes"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"createdAt"`
	ServiceName    string       `json:"serviceName"`
	BookingCost    float64      `json:"bookingCost"`
	Commission     float64      `json:"commission"`
	MerchantPayout float64      `json:"merchantPayout"`
}

// FinancialSummary is a pure read-side aggregate; it is computed on demand
// and never stored.
type FinancialSummary struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCommission float64 `json:"totalCommission"`
	TotalPayout     float64 `json:"totalPayout"`
}

func NewMerchantView(m merchant.Merchant) MerchantView {
	services := make([]ServiceView, 0, len(m.Services))
	for _, s := range m.Services {
		services = append(services, ServiceView{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return MerchantView{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		Description:    m.Description,
		ImageURL:       m.ImageURL,
		Services:       services,
		OperatingHours: m.OperatingHours,
	}
}

func NewUserView(u user.User) UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role.String(),
		MerchantID: u.MerchantID,
	}
}

func NewBookingView(b booking.Booking) BookingView {
	return BookingView{
		ID:             b.ID(),
		MerchantID:     b.MerchantID(),
		Merchant:       NewMerchantView(b.Merchant()),
		Date:           b.Date(),
		Time:           b.TimeOfDay(),
		Guests:         b.Guests(),
		Notes:          b.Notes(),
		Status:         b.Status().String(),
		CreatedAt:      b.CreatedAt(),
		ServiceName:    b.ServiceName(),
		BookingCost:    b.BookingCost(),
		Commission:     b.Commission(),
		MerchantPayout: b.MerchantPayout(),
	}
}
