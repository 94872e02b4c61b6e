package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents an item in the store catalog.
// It is the aggregate root for catalog operations; the JSON field names
// match the persisted catalog schema.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Size        string          `json:"size"`
	Stock       int             `json:"stock"`
	InventoryID string          `json:"inventoryId"`
	Image       string          `json:"image"`
}

// NewProduct creates a new product. The id is taken from the wall clock in
// unix milliseconds and the inventory id is a fresh UUID.
func NewProduct(name, description string, price decimal.Decimal, category, subCategory, size string, stock int, image string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateStock(stock); err != nil {
		return nil, err
	}

	return &Product{
		ID:          time.Now().UnixMilli(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		SubCategory: subCategory,
		Size:        size,
		Stock:       stock,
		InventoryID: uuid.NewString(),
		Image:       image,
	}, nil
}

// Update replaces the product's editable fields
func (p *Product) Update(name, description string, price decimal.Decimal, category, subCategory, size string, stock int, image string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := validateStock(stock); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Category = category
	p.SubCategory = subCategory
	p.Size = size
	p.Stock = stock
	p.Image = image

	return nil
}

// AdjustStock applies a stock delta, clamping the result at zero.
// It returns the delta that was actually applied.
func (p *Product) AdjustStock(delta int) int {
	next := p.Stock + delta
	if next < 0 {
		applied := -p.Stock
		p.Stock = 0
		return applied
	}
	p.Stock = next
	return delta
}

// Reserve removes quantity units from stock for a pending sale.
// Fails when the requested quantity exceeds the available stock.
func (p *Product) Reserve(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > p.Stock {
		return shared.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

// Release returns previously reserved units to stock
func (p *Product) Release(quantity int) {
	if quantity > 0 {
		p.Stock += quantity
	}
}

// Matches reports whether the product satisfies the given filter
func (p *Product) Matches(f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Filter narrows a catalog listing. Search matches name or category
// case-insensitively; price bounds are inclusive.
type Filter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ApplyFilter returns the products matching the filter, preserving order
func ApplyFilter(products []Product, f Filter) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Matches(f) {
			result = append(result, p)
		}
	}
	return result
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	return nil
}
