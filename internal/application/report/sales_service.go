package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/ledger"
	"github.com/storefront/backend/internal/domain/shared"
)

// SalesService serves the sales history, the dashboard summary, and
// ledger deletions.
type SalesService struct {
	saleRepo     ledger.SaleRepository
	profitMargin decimal.Decimal
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo ledger.SaleRepository, profitMargin decimal.Decimal) *SalesService {
	return &SalesService{
		saleRepo:     saleRepo,
		profitMargin: profitMargin,
	}
}

// List returns the sales matching the filter, in recording order.
func (s *SalesService) List(ctx context.Context, req ListSalesRequest) ([]SaleResponse, error) {
	sales, err := s.saleRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	filter := ledger.Filter{Year: req.Year, Month: req.Month, Day: req.Day, Index: req.Index}
	filtered := filter.Apply(sales)

	responses := make([]SaleResponse, len(filtered))
	for i, sale := range filtered {
		responses[i] = toSaleResponse(sale)
	}
	return responses, nil
}

// Get returns one sale by id.
func (s *SalesService) Get(ctx context.Context, saleID int64) (*SaleResponse, error) {
	sale, err := s.find(ctx, saleID)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(*sale)
	return &resp, nil
}

// find looks a sale up in the ledger.
func (s *SalesService) find(ctx context.Context, saleID int64) (*ledger.Sale, error) {
	sales, err := s.saleRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, sale := range sales {
		if sale.SaleID == saleID {
			return &sale, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Summary buckets the whole ledger by calendar day for the dashboard.
func (s *SalesService) Summary(ctx context.Context) (*SummaryResponse, error) {
	sales, err := s.saleRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	resp := toSummaryResponse(ledger.Summarize(sales, s.profitMargin))
	return &resp, nil
}

// Delete removes one sale from the ledger.
func (s *SalesService) Delete(ctx context.Context, saleID int64) error {
	removed, err := s.saleRepo.Delete(ctx, []int64{saleID})
	if err != nil {
		return err
	}
	if removed == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteMany removes a batch of sales; unknown ids are ignored.
func (s *SalesService) DeleteMany(ctx context.Context, req DeleteSalesRequest) (*DeleteSalesResponse, error) {
	removed, err := s.saleRepo.Delete(ctx, req.SaleIDs)
	if err != nil {
		return nil, err
	}
	return &DeleteSalesResponse{Removed: removed}, nil
}
