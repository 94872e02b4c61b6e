package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns the catalog, narrowed by the request's filter
func (s *ProductService) List(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error) {
	products, err := s.productRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.ApplyFilter(products, catalog.Filter{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})

	responses := make([]ProductResponse, len(filtered))
	for i, p := range filtered {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}

// Get returns one product by id
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

// Create validates and adds a new product to the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Category, req.SubCategory, req.Size, req.Stock, req.Image)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Append(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(*product)
	return &resp, nil
}

// Update edits an existing product. Validation failures abort with the
// stored product unchanged.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Price, req.Category, req.SubCategory, req.Size, req.Stock, req.Image); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(*product)
	return &resp, nil
}

// AdjustStock applies a stock delta, clamped at zero
func (s *ProductService) AdjustStock(ctx context.Context, id int64, delta int) (*ProductResponse, error) {
	product, err := s.productRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(*product)
	return &resp, nil
}

// Delete archives a product into the deletion log
func (s *ProductService) Delete(ctx context.Context, id int64) (*DeletedProductResponse, error) {
	archived, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDeletedProductResponse(*archived)
	return &resp, nil
}

// DeletedLog returns the deletion archive and the running deletion counter.
// The archive accepts the same filters as the live catalog, and the response
// carries the combined price of the entries it lists.
func (s *ProductService) DeletedLog(ctx context.Context, req ListProductsRequest) (*DeletedLogResponse, error) {
	deleted, err := s.productRepo.Deleted(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.productRepo.DeletedCount(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.FilterDeleted(deleted, catalog.Filter{
		Search:   req.Search,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})

	total := decimal.Zero
	responses := make([]DeletedProductResponse, len(filtered))
	for i, d := range filtered {
		responses[i] = toDeletedProductResponse(d)
		total = total.Add(d.Price)
	}
	return &DeletedLogResponse{Deleted: responses, Count: count, TotalPrice: total}, nil
}

// PurgeDeleted removes entries from the deletion archive
func (s *ProductService) PurgeDeleted(ctx context.Context, ids []int64) (int, error) {
	return s.productRepo.PurgeDeleted(ctx, ids)
}
