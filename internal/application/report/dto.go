package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/ledger"
)

// ListSalesRequest filters the sales history. Index selects one entry of
// the filtered list, counting from 1.
type ListSalesRequest struct {
	Year  *int `form:"year" binding:"omitempty,min=1970"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Day   *int `form:"day" binding:"omitempty,min=1,max=31"`
	Index *int `form:"index" binding:"omitempty,min=1"`
}

// DeleteSalesRequest removes a batch of sales from the ledger
type DeleteSalesRequest struct {
	SaleIDs []int64 `json:"saleIds" binding:"required,min=1"`
}

// PurchaseResponse represents one purchased line of a sale
type PurchaseResponse struct {
	ProductID   int64           `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// SaleResponse represents a recorded sale in API responses
type SaleResponse struct {
	SaleID        int64              `json:"saleId"`
	CustomerID    int64              `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	SaleDate      string             `json:"saleDate"`
	Purchases     []PurchaseResponse `json:"purchases"`
	Total         decimal.Decimal    `json:"total"`
}

// DayBucketResponse aggregates one calendar day for the dashboard
type DayBucketResponse struct {
	Date   string          `json:"date"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
	Profit decimal.Decimal `json:"profit"`
}

// SummaryResponse is the dashboard view of the ledger
type SummaryResponse struct {
	SaleCount   int                 `json:"saleCount"`
	GrandTotal  decimal.Decimal     `json:"grandTotal"`
	GrandProfit decimal.Decimal     `json:"grandProfit"`
	Days        []DayBucketResponse `json:"days"`
}

// DeleteSalesResponse reports how many sales a deletion removed
type DeleteSalesResponse struct {
	Removed int `json:"removed"`
}

func toPurchaseResponse(item cart.LineItem) PurchaseResponse {
	return PurchaseResponse{
		ProductID:   item.ProductID,
		Name:        item.Name,
		Price:       item.Price,
		Category:    item.Category,
		SubCategory: item.SubCategory,
		Size:        item.Size,
		Quantity:    item.Quantity,
		Amount:      item.Amount(),
	}
}

func toSaleResponse(s ledger.Sale) SaleResponse {
	purchases := make([]PurchaseResponse, len(s.Purchases))
	for i, item := range s.Purchases {
		purchases[i] = toPurchaseResponse(item)
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		SaleDate:      s.SaleDate.Format(time.RFC3339),
		Purchases:     purchases,
		Total:         s.Total,
	}
}

func toSummaryResponse(s ledger.Summary) SummaryResponse {
	days := make([]DayBucketResponse, len(s.Days))
	for i, d := range s.Days {
		days[i] = DayBucketResponse(d)
	}
	return SummaryResponse{
		SaleCount:   s.SaleCount,
		GrandTotal:  s.GrandTotal,
		GrandProfit: s.GrandProfit,
		Days:        days,
	}
}
