package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/partner"
)

// SaleRepository defines the interface for the sale ledger. Recording a
// sale advances the persisted sale counter and appends in one transaction.
type SaleRepository interface {
	// Load returns the whole ledger in recording order
	Load(ctx context.Context) ([]Sale, error)

	// Record assigns the next sale id and appends the sale
	Record(ctx context.Context, customer partner.Customer, purchases []cart.LineItem, total decimal.Decimal, at time.Time) (*Sale, error)

	// Delete removes the sales with the given ids and reports how many
	// records were actually removed; unknown ids are ignored
	Delete(ctx context.Context, saleIDs []int64) (int, error)
}
