package request

import (
	"toaigo/internal/usecase/commands"
)

type ServiceInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

// ReplaceServicesRequest carries the full replacement catalog. An empty list
// is legal: a merchant may clear its offerings.
type ReplaceServicesRequest struct {
	Services []ServiceInput `json:"services" binding:"required,dive"`
}

func (r ReplaceServicesRequest) ToInputs() []commands.ServiceInput {
	inputs := make([]commands.ServiceInput, 0, len(r.Services))
	for _, s := range r.Services {
		inputs = append(inputs, commands.ServiceInput{
			ID:    s.ID,
			Name:  s.Name,
			Price: s.Price,
		})
	}
	return inputs
}
