package partner

import "context"

// CustomerRepository defines the interface for customer persistence.
// Registration assigns the id from a persisted counter; the counter
// increment and the append happen in one transaction.
type CustomerRepository interface {
	// Load returns all registered customers in registration order
	Load(ctx context.Context) ([]Customer, error)

	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// Register validates and stores a new customer, assigning the next id
	Register(ctx context.Context, name, phone string) (*Customer, error)

	// Latest returns the most recently registered customer, or
	// shared.ErrNotFound when none exists
	Latest(ctx context.Context) (*Customer, error)
}
