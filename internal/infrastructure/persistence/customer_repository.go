package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// KVCustomerRepository implements partner.CustomerRepository on the KV
// store. Registration advances the customer id counter and appends the
// customer in one transaction.
type KVCustomerRepository struct {
	kv *KVStore
}

// NewKVCustomerRepository creates a new customer repository
func NewKVCustomerRepository(kv *KVStore) *KVCustomerRepository {
	return &KVCustomerRepository{kv: kv}
}

// Ensure interface compliance
var _ partner.CustomerRepository = (*KVCustomerRepository)(nil)

// Load returns all registered customers in registration order
func (r *KVCustomerRepository) Load(ctx context.Context) ([]partner.Customer, error) {
	customers := []partner.Customer{}
	if err := r.kv.Get(ctx, KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID finds a customer by its ID
func (r *KVCustomerRepository) FindByID(ctx context.Context, id int64) (*partner.Customer, error) {
	customers, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Register validates and stores a new customer, assigning the next id from
// the persisted counter
func (r *KVCustomerRepository) Register(ctx context.Context, name, phone string) (*partner.Customer, error) {
	var customer *partner.Customer
	err := r.kv.Update(ctx, func(view *View) error {
		id, err := view.NextCounter(KeyCustomerIDCounter)
		if err != nil {
			return err
		}

		customer, err = partner.NewCustomer(id, name, phone)
		if err != nil {
			return err
		}

		customers := []partner.Customer{}
		if err := view.Get(KeyCustomers, &customers); err != nil {
			return err
		}
		customers = append(customers, *customer)
		return view.Put(KeyCustomers, customers)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Latest returns the most recently registered customer
func (r *KVCustomerRepository) Latest(ctx context.Context) (*partner.Customer, error) {
	customers, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, shared.ErrNotFound
	}
	return &customers[len(customers)-1], nil
}
