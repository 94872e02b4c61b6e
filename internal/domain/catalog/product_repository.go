package catalog

import "context"

// ProductRepository defines the interface for catalog persistence.
// The catalog is stored whole under a single key; every mutation is an
// atomic read-modify-write of that key.
type ProductRepository interface {
	// Load returns the persisted catalog, seeding the defaults when no
	// catalog exists yet
	Load(ctx context.Context) ([]Product, error)

	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Save overwrites the whole catalog
	Save(ctx context.Context, products []Product) error

	// Append adds a product to the catalog
	Append(ctx context.Context, product *Product) error

	// Update replaces the product with the matching ID
	Update(ctx context.Context, product *Product) error

	// AdjustStock applies a stock delta to one product, clamped at zero,
	// and returns the updated product
	AdjustStock(ctx context.Context, id int64, delta int) (*Product, error)

	// Reserve removes quantity units of stock for a pending sale, failing
	// with shared.ErrInsufficientStock when not enough stock is available
	Reserve(ctx context.Context, id int64, quantity int) (*Product, error)

	// Release returns previously reserved units to stock
	Release(ctx context.Context, id int64, quantity int) (*Product, error)

	// Delete removes a product from the catalog and archives it in the
	// deletion log, bumping the deletion counter
	Delete(ctx context.Context, id int64) (*DeletedProduct, error)

	// Deleted returns the archive of deleted products
	Deleted(ctx context.Context) ([]DeletedProduct, error)

	// PurgeDeleted removes entries from the deletion archive
	PurgeDeleted(ctx context.Context, ids []int64) (int, error)

	// DeletedCount returns how many deletions have been performed
	DeletedCount(ctx context.Context) (int64, error)
}
