package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9\-]{2,31}$`)

type CatalogService struct {
	productRepo *repositories.ProductRepository
	cacheRepo   *repositories.CacheRepository
}

func NewCatalogService(productRepo *repositories.ProductRepository, cacheRepo *repositories.CacheRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
	}
}

type CreateProductRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description,omitempty"`
	UnitPrice    string  `json:"unit_price" binding:"required"`
	UnitsInStock int     `json:"units_in_stock"`
}

// ValidateSKU enforces the catalog SKU shape: 3-32 chars, uppercase
// alphanumerics and dashes, starting with an alphanumeric.
func ValidateSKU(sku string) error {
	normalized := strings.ToUpper(strings.TrimSpace(sku))
	if normalized == "" {
		return fmt.Errorf("sku cannot be empty")
	}
	if !skuPattern.MatchString(normalized) {
		return fmt.Errorf("invalid sku %q: must be 3-32 uppercase alphanumerics or dashes", sku)
	}
	return nil
}

func (s *CatalogService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if err := ValidateSKU(req.SKU); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price %q: %w", req.UnitPrice, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("unit_price cannot be negative")
	}
	if req.UnitsInStock < 0 {
		return nil, fmt.Errorf("units_in_stock cannot be negative")
	}

	product := &models.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		Description:  req.Description,
		UnitPrice:    price,
		UnitsInStock: req.UnitsInStock,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return product, nil
}

// GetProductBySKU reads through the cache: hit returns the cached copy,
// miss falls back to the database and fills the cache.
func (s *CatalogService) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	normalized := strings.ToUpper(strings.TrimSpace(sku))

	cached, err := s.cacheRepo.GetProduct(ctx, normalized)
	if err != nil {
		// A cache failure never fails the read
		log.Printf("product cache read failed for %s: %v", normalized, err)
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetBySKU(normalized)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if err := s.cacheRepo.StoreProduct(ctx, product); err != nil {
		log.Printf("product cache write failed for %s: %v", normalized, err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(includeDiscontinued bool) ([]models.Product, error) {
	return s.productRepo.List(includeDiscontinued)
}

func (s *CatalogService) AdjustStock(ctx context.Context, productID uuid.UUID, delta int) (*models.Product, error) {
	if delta == 0 {
		return nil, fmt.Errorf("stock adjustment cannot be zero")
	}

	if err := s.productRepo.AdjustStock(productID, delta); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product != nil {
		if err := s.cacheRepo.InvalidateProduct(ctx, product.SKU); err != nil {
			log.Printf("product cache invalidation failed for %s: %v", product.SKU, err)
		}
	}

	return product, nil
}

func (s *CatalogService) DiscontinueProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.productRepo.Discontinue(productID); err != nil {
		return fmt.Errorf("failed to discontinue product: %w", err)
	}

	if err := s.cacheRepo.InvalidateProduct(ctx, product.SKU); err != nil {
		log.Printf("product cache invalidation failed for %s: %v", product.SKU, err)
	}

	return nil
}

type BulkImportRequest struct {
	Products []CreateProductRequest `json:"products" binding:"required"`
}

// BulkImportProducts validates every line before touching the database,
// then loads the batch in one COPY. Either all rows land or none do.
func (s *CatalogService) BulkImportProducts(req BulkImportRequest) (int64, error) {
	if len(req.Products) == 0 {
		return 0, fmt.Errorf("import batch cannot be empty")
	}

	products := make([]models.Product, 0, len(req.Products))
	for i, item := range req.Products {
		if err := ValidateSKU(item.SKU); err != nil {
			return 0, fmt.Errorf("batch item %d: %w", i, err)
		}
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return 0, fmt.Errorf("batch item %d: invalid unit_price %q", i, item.UnitPrice)
		}
		if price.IsNegative() || item.UnitsInStock < 0 {
			return 0, fmt.Errorf("batch item %d: negative price or stock", i)
		}

		products = append(products, models.Product{
			SKU:          item.SKU,
			Name:         item.Name,
			Description:  item.Description,
			UnitPrice:    price,
			UnitsInStock: item.UnitsInStock,
		})
	}

	count, err := s.productRepo.BulkImport(products)
	if err != nil {
		return 0, fmt.Errorf("bulk import failed: %w", err)
	}

	return count, nil
}
