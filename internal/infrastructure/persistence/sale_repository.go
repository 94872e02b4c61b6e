package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/ledger"
	"github.com/storefront/backend/internal/domain/partner"
)

// KVSaleRepository implements ledger.SaleRepository on the KV store.
// Recording advances the sale id counter and appends in one transaction.
type KVSaleRepository struct {
	kv *KVStore
}

// NewKVSaleRepository creates a new sale repository
func NewKVSaleRepository(kv *KVStore) *KVSaleRepository {
	return &KVSaleRepository{kv: kv}
}

// Ensure interface compliance
var _ ledger.SaleRepository = (*KVSaleRepository)(nil)

// Load returns the whole ledger in recording order
func (r *KVSaleRepository) Load(ctx context.Context) ([]ledger.Sale, error) {
	sales := []ledger.Sale{}
	if err := r.kv.Get(ctx, KeySales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// Record assigns the next sale id and appends the sale
func (r *KVSaleRepository) Record(ctx context.Context, customer partner.Customer, purchases []cart.LineItem, total decimal.Decimal, at time.Time) (*ledger.Sale, error) {
	var sale *ledger.Sale
	err := r.kv.Update(ctx, func(view *View) error {
		id, err := view.NextCounter(KeySaleIDCounter)
		if err != nil {
			return err
		}

		sale, err = ledger.NewSale(id, customer, purchases, total, at)
		if err != nil {
			return err
		}

		sales := []ledger.Sale{}
		if err := view.Get(KeySales, &sales); err != nil {
			return err
		}
		sales = append(sales, *sale)
		return view.Put(KeySales, sales)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes the sales with the given ids, reporting how many records
// were actually removed. Unknown ids are ignored.
func (r *KVSaleRepository) Delete(ctx context.Context, saleIDs []int64) (int, error) {
	drop := make(map[int64]bool, len(saleIDs))
	for _, id := range saleIDs {
		drop[id] = true
	}

	removed := 0
	err := r.kv.Update(ctx, func(view *View) error {
		sales := []ledger.Sale{}
		if err := view.Get(KeySales, &sales); err != nil {
			return err
		}

		kept := make([]ledger.Sale, 0, len(sales))
		for _, s := range sales {
			if drop[s.SaleID] {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		if removed == 0 {
			return nil
		}
		return view.Put(KeySales, kept)
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
