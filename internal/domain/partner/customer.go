package partner

import (
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// digitsOnly is the canonical phone format: the raw digit string with no
// separators. Normalisation happens at the boundary, not here.
var digitsOnly = regexp.MustCompile(`^\d+$`)

// Customer represents a registered store customer. The most recently
// registered customer is the active customer for the current sale.
// The JSON field names match the persisted customer schema.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewCustomer creates a customer with the given id from the persisted
// counter
func NewCustomer(id int64, name, phone string) (*Customer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	return &Customer{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Phone: phone,
	}, nil
}

// NormalizePhone strips separator characters from a phone number so it can
// be validated against the canonical digit-string format
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '+':
			return -1
		}
		return r
	}, phone)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 100 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot be empty")
	}
	if len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 20 digits")
	}
	if !digitsOnly.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone number must contain digits only")
	}
	return nil
}
