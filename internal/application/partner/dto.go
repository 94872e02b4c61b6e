package partner

import "github.com/storefront/backend/internal/domain/partner"

// RegisterCustomerRequest represents a customer registration
type RegisterCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Phone string `json:"phone" binding:"required,min=1,max=25"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func toCustomerResponse(c partner.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
