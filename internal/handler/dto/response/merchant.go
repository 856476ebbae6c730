package response

import (
	"toaigo/internal/usecase/queries"
)

type ServiceResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MerchantResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"imageUrl"`
	Services       []ServiceResponse `json:"services"`
	OperatingHours map[string]string `json:"operatingHours"`
}

func FromMerchantView(v queries.MerchantView) MerchantResponse {
	services := make([]ServiceResponse, 0, len(v.Services))
	for _, s := range v.Services {
		services = append(services, ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price})
	}
	return MerchantResponse{
		ID:             v.ID,
		Name:           v.Name,
		Category:       v.Category,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		Services:       services,
		OperatingHours: v.OperatingHours,
	}
}

func FromMerchantViews(vs []queries.MerchantView) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromMerchantView(v))
	}
	return out
}
