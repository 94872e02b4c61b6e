package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// KVProductRepository implements catalog.ProductRepository on the KV store.
// The whole catalog lives under one key, the deletion archive under another;
// each method is one atomic read-modify-write.
type KVProductRepository struct {
	kv     *KVStore
	seed   bool
	logger *zap.Logger
}

// NewKVProductRepository creates a new product repository. When seed is set,
// the first Load of an empty store persists the default catalog.
func NewKVProductRepository(kv *KVStore, seed bool, logger *zap.Logger) *KVProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVProductRepository{kv: kv, seed: seed, logger: logger}
}

// Ensure interface compliance
var _ catalog.ProductRepository = (*KVProductRepository)(nil)

// Load returns the persisted catalog, seeding the defaults when no catalog
// has been stored yet
func (r *KVProductRepository) Load(ctx context.Context) ([]catalog.Product, error) {
	exists, err := r.kv.Exists(ctx, KeyProducts)
	if err != nil {
		return nil, err
	}
	if !exists && r.seed {
		products := catalog.SeedProducts()
		if err := r.kv.Put(ctx, KeyProducts, products); err != nil {
			return nil, err
		}
		r.logger.Info("Seeded default catalog", zap.Int("products", len(products)))
		return products, nil
	}

	products := []catalog.Product{}
	if err := r.kv.Get(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID finds a product by its ID
func (r *KVProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	products, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Save overwrites the whole catalog
func (r *KVProductRepository) Save(ctx context.Context, products []catalog.Product) error {
	return r.kv.Put(ctx, KeyProducts, products)
}

// Append adds a product to the catalog
func (r *KVProductRepository) Append(ctx context.Context, product *catalog.Product) error {
	return r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}
		products = append(products, *product)
		return view.Put(KeyProducts, products)
	})
}

// Update replaces the product with the matching ID
func (r *KVProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = *product
				return view.Put(KeyProducts, products)
			}
		}
		return shared.ErrNotFound
	})
}

// AdjustStock applies a stock delta to one product, clamped at zero
func (r *KVProductRepository) AdjustStock(ctx context.Context, id int64, delta int) (*catalog.Product, error) {
	var updated catalog.Product
	err := r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == id {
				products[i].AdjustStock(delta)
				updated = products[i]
				return view.Put(KeyProducts, products)
			}
		}
		return shared.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reserve removes quantity units of stock for a pending sale. The check
// and the decrement run in one transaction.
func (r *KVProductRepository) Reserve(ctx context.Context, id int64, quantity int) (*catalog.Product, error) {
	var updated catalog.Product
	err := r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == id {
				if err := products[i].Reserve(quantity); err != nil {
					return err
				}
				updated = products[i]
				return view.Put(KeyProducts, products)
			}
		}
		return shared.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Release returns previously reserved units to stock
func (r *KVProductRepository) Release(ctx context.Context, id int64, quantity int) (*catalog.Product, error) {
	var updated catalog.Product
	err := r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}
		for i := range products {
			if products[i].ID == id {
				products[i].Release(quantity)
				updated = products[i]
				return view.Put(KeyProducts, products)
			}
		}
		return shared.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product from the catalog, archives it in the deletion
// log and bumps the deletion counter, all in one transaction
func (r *KVProductRepository) Delete(ctx context.Context, id int64) (*catalog.DeletedProduct, error) {
	var archived catalog.DeletedProduct
	err := r.kv.Update(ctx, func(view *View) error {
		products := []catalog.Product{}
		if err := view.Get(KeyProducts, &products); err != nil {
			return err
		}

		idx := -1
		for i := range products {
			if products[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return shared.ErrNotFound
		}

		archived = catalog.NewDeletedProduct(products[idx], time.Now())
		products = append(products[:idx], products[idx+1:]...)
		if err := view.Put(KeyProducts, products); err != nil {
			return err
		}

		deleted := []catalog.DeletedProduct{}
		if err := view.Get(KeyDeletedProducts, &deleted); err != nil {
			return err
		}
		deleted = append(deleted, archived)
		if err := view.Put(KeyDeletedProducts, deleted); err != nil {
			return err
		}

		_, err := view.NextCounter(KeyDeletedCount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &archived, nil
}

// Deleted returns the archive of deleted products
func (r *KVProductRepository) Deleted(ctx context.Context) ([]catalog.DeletedProduct, error) {
	deleted := []catalog.DeletedProduct{}
	if err := r.kv.Get(ctx, KeyDeletedProducts, &deleted); err != nil {
		return nil, err
	}
	return deleted, nil
}

// PurgeDeleted removes entries from the deletion archive, reporting how
// many were removed. Unknown ids are ignored.
func (r *KVProductRepository) PurgeDeleted(ctx context.Context, ids []int64) (int, error) {
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	removed := 0
	err := r.kv.Update(ctx, func(view *View) error {
		deleted := []catalog.DeletedProduct{}
		if err := view.Get(KeyDeletedProducts, &deleted); err != nil {
			return err
		}

		kept := make([]catalog.DeletedProduct, 0, len(deleted))
		for _, d := range deleted {
			if drop[d.ID] {
				removed++
				continue
			}
			kept = append(kept, d)
		}
		if removed == 0 {
			return nil
		}
		return view.Put(KeyDeletedProducts, kept)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// DeletedCount returns how many deletions have been performed
func (r *KVProductRepository) DeletedCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.kv.Get(ctx, KeyDeletedCount, &count); err != nil {
		return 0, err
	}
	return count, nil
}
