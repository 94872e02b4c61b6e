package partner

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Register creates a new customer with the next sequential ID.
// The phone number is normalized to digits before validation.
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.Register(ctx, req.Name, partner.NormalizePhone(req.Phone))
	if err != nil {
		return nil, err
	}

	resp := toCustomerResponse(*customer)
	return &resp, nil
}

// List returns every registered customer in registration order.
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = toCustomerResponse(c)
	}
	return responses, nil
}

// Active returns the most recently registered customer, the one new
// sales are attributed to.
func (s *CustomerService) Active(ctx context.Context) (*CustomerResponse, error) {
	customer, err := s.customerRepo.Latest(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveCustomer
		}
		return nil, err
	}

	resp := toCustomerResponse(*customer)
	return &resp, nil
}
