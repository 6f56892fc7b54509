package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/stokradar/backend/internal/domain"
)

// CatalogService handles catalog ingestion and pass-through store operations
type CatalogService struct {
	repository domain.ProductRepository
	parser     domain.RowParser
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repository domain.ProductRepository, parser domain.RowParser) *CatalogService {
	return &CatalogService{repository: repository, parser: parser}
}

// ReplaceCatalogFromWorkbook parses an uploaded workbook and replaces the
// catalog with its rows.
func (s *CatalogService) ReplaceCatalogFromWorkbook(ctx context.Context, r io.Reader) (*domain.UploadResult, error) {
	rows, err := s.parser.ParseCatalog(r)
	if err != nil {
		return nil, err
	}
	return s.ReplaceCatalog(ctx, rows)
}

// ReplaceCatalog turns parsed spreadsheet rows into products and replaces
// the entire catalog with them. Rows missing any required field are
// silently dropped. Every product's normalized description is computed here
// with the same routine the query path uses, and the whole batch shares one
// upload timestamp.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, rows []domain.Row) (*domain.UploadResult, error) {
	uploadedAt := time.Now().Format(time.RFC3339)

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		if !row.Complete() {
			continue
		}
		products = append(products, domain.Product{
			ID:                    uuid.NewString(),
			Brand:                 row.Brand,
			Code:                  row.Code,
			Description:           row.Description,
			Price:                 row.Price,
			NormalizedDescription: NormalizeText(row.Description),
			UploadedAt:            uploadedAt,
		})
	}

	if err := s.repository.ReplaceAll(ctx, products); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	log.Printf("[CATALOG] catalog replaced: %d products (%d rows dropped)", len(products), len(rows)-len(products))

	return &domain.UploadResult{
		Message:      fmt.Sprintf("Successfully uploaded %d products", len(products)),
		ProductCount: len(products),
		UploadedAt:   uploadedAt,
	}, nil
}

// Count returns the number of stored products
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	count, err := s.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return count, nil
}

// Clear removes every stored product and returns how many were deleted
func (s *CatalogService) Clear(ctx context.Context) (int, error) {
	deleted, err := s.repository.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	log.Printf("[CATALOG] catalog cleared: %d products deleted", deleted)
	return deleted, nil
}
