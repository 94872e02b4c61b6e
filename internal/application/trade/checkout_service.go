package trade

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ledger"
	"github.com/storefront/backend/internal/domain/partner"
	"github.com/storefront/backend/internal/domain/shared"
)

// CheckoutService runs the point-of-sale flow: one shared cart, stock
// reserved while items sit in it, and a sale recorded against the most
// recently registered customer at checkout.
type CheckoutService struct {
	mu           sync.Mutex
	basket       *cart.Cart
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	saleRepo     ledger.SaleRepository
	taxRate      decimal.Decimal
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	saleRepo ledger.SaleRepository,
	taxRate decimal.Decimal,
) *CheckoutService {
	return &CheckoutService{
		basket:       cart.New(),
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		taxRate:      taxRate,
	}
}

// activeCustomer resolves the customer the current sale belongs to.
func (s *CheckoutService) activeCustomer(ctx context.Context) (*partner.Customer, error) {
	customer, err := s.customerRepo.Latest(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoActiveCustomer
		}
		return nil, err
	}
	return customer, nil
}

// AddToCart reserves stock for the requested quantity and merges the
// line into the cart. Without a registered customer nothing is reserved.
func (s *CheckoutService) AddToCart(ctx context.Context, req AddToCartRequest) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.activeCustomer(ctx); err != nil {
		return nil, err
	}

	product, err := s.productRepo.Reserve(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.basket.AddItem(*product, req.Quantity); err != nil {
		// hand the reserved units back before failing
		if _, releaseErr := s.productRepo.Release(ctx, req.ProductID, req.Quantity); releaseErr != nil {
			return nil, releaseErr
		}
		return nil, err
	}

	resp := toCartResponse(s.basket)
	return &resp, nil
}

// RemoveFromCart drops a line from the cart and returns its reserved
// units to stock.
func (s *CheckoutService) RemoveFromCart(ctx context.Context, productID int64) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity, err := s.basket.RemoveItem(productID)
	if err != nil {
		return nil, err
	}

	if _, err := s.productRepo.Release(ctx, productID, quantity); err != nil {
		return nil, err
	}

	resp := toCartResponse(s.basket)
	return &resp, nil
}

// ViewCart returns the current cart contents.
func (s *CheckoutService) ViewCart(ctx context.Context) CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return toCartResponse(s.basket)
}

// Totals prices the current cart with the configured tax rate and the
// requested discount.
func (s *CheckoutService) Totals(ctx context.Context, req TotalsRequest) (*TotalsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals, err := s.price(req.DiscountValue, req.DiscountType)
	if err != nil {
		return nil, err
	}

	resp := toTotalsResponse(totals)
	return &resp, nil
}

// Checkout records the cart as a sale for the active customer and
// empties it. The stock reserved while shopping stays deducted.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.activeCustomer(ctx)
	if err != nil {
		return nil, err
	}

	if s.basket.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	totals, err := s.price(req.DiscountValue, req.DiscountType)
	if err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.Record(ctx, *customer, s.basket.Items, totals.Total, time.Now())
	if err != nil {
		return nil, err
	}

	s.basket.Clear()

	return &CheckoutResponse{
		SaleID:       sale.SaleID,
		CustomerID:   sale.CustomerID,
		CustomerName: sale.CustomerName,
		SaleDate:     sale.SaleDate.Format(time.RFC3339),
		Total:        sale.Total,
	}, nil
}

// price computes totals for the current cart; callers hold the lock.
func (s *CheckoutService) price(discountValue decimal.Decimal, discountType string) (cart.Totals, error) {
	dt := cart.DiscountType(discountType)
	if discountType == "" {
		dt = cart.DiscountPercentage
	}
	return cart.ComputeTotals(s.basket.Items, s.taxRate, discountValue, dt)
}
