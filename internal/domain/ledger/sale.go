package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// Sale is one completed checkout. Sales are immutable once recorded; the
// only permitted mutation of the ledger is deletion. The JSON field names
// match the persisted sales schema.
type Sale struct {
	SaleID        int64           `json:"saleId"`
	CustomerID    int64           `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	SaleDate      time.Time       `json:"saleDate"`
	Purchases     []cart.LineItem `json:"purchases"`
	Total         decimal.Decimal `json:"total"`
}

// NewSale records a checkout for the given customer. The sale id comes from
// the persisted counter; the total is the already-priced cart total.
func NewSale(saleID int64, customer partner.Customer, purchases []cart.LineItem, total decimal.Decimal, at time.Time) (*Sale, error) {
	if len(purchases) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Sale total cannot be negative")
	}

	items := make([]cart.LineItem, len(purchases))
	copy(items, purchases)

	return &Sale{
		SaleID:        saleID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		SaleDate:      at,
		Purchases:     items,
		Total:         total,
	}, nil
}

// Date returns the calendar date of the sale in YYYY-MM-DD form
func (s *Sale) Date() string {
	return s.SaleDate.Format("2006-01-02")
}
