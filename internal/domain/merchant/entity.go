package merchant

import (
	"errors"
	"strings"
)

var (
	ErrEmptyServiceName = errors.New("service name cannot be empty")
	ErrNegativePrice    = errors.New("service price cannot be negative")
)

// Service is a bookable catalog item. Once a booking references a service,
// the booking keeps its own snapshot of the name and price; the catalog entry
// itself stays freely editable.
type Service struct {
	ID    string
	Name  string
	Price float64
}

func NewService(id, name string, price float64) (Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Service{}, ErrEmptyServiceName
	}
	if price < 0 {
		return Service{}, ErrNegativePrice
	}
	return Service{ID: id, Name: name, Price: price}, nil
}

// Merchant is a directory record. Fields are exported value data: bookings
// embed a deep copy of the whole record as a point-in-time snapshot.
type Merchant struct {
	ID             string
	Name           string
	Category       string
	Description    string
	ImageURL       string
	Services       []Service
	OperatingHours map[string]string
}

// ServiceByID looks up a catalog entry by id.
func (m Merchant) ServiceByID(id string) (Service, bool) {
	for _, s := range m.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ValidateServices checks a full replacement catalog.
func ValidateServices(services []Service) error {
	for _, s := range services {
		if strings.TrimSpace(s.Name) == "" {
			return ErrEmptyServiceName
		}
		if s.Price < 0 {
			return ErrNegativePrice
		}
	}
	return nil
}
