package usecase

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/stokradar/backend/internal/domain"
)

// defaultMinScore is the ranking floor; entries must score strictly above
// it to be included in results.
const defaultMinScore = 0.5

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	MinScore             float64
	ProductTypeThreshold float64
	OtherTermsThreshold  float64
	Workers              int
	EnableDebugLogging   bool
}

// SearchService ranks catalog products against free-text queries. Scoring
// is fanned out over a worker pool; every product is scored independently
// and results are merged back in catalog order before sorting.
type SearchService struct {
	repository         domain.ProductRepository
	scorer             *Scorer
	pool               *ants.Pool
	minScore           float64
	enableDebugLogging bool
}

// NewSearchService creates a search service with the given configuration.
// Workers defaults to the number of CPUs.
func NewSearchService(repository domain.ProductRepository, config SearchServiceConfig) (*SearchService, error) {
	minScore := config.MinScore
	if minScore <= 0 {
		minScore = defaultMinScore
	}

	workers := config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring pool: %w", err)
	}

	return &SearchService{
		repository: repository,
		scorer: NewScorer(ScorerConfig{
			ProductTypeThreshold: config.ProductTypeThreshold,
			OtherTermsThreshold:  config.OtherTermsThreshold,
		}),
		pool:               pool,
		minScore:           minScore,
		enableDebugLogging: config.EnableDebugLogging,
	}, nil
}

// Search scores every stored product against the query and returns the
// ranked results. Degenerate queries (empty, whitespace, punctuation only)
// and an empty catalog both yield an empty result set, not an error.
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	response := &domain.SearchResponse{
		Results: []domain.ScoredProduct{},
		Query:   query,
	}

	queryTokens := TokenizeQuery(query)
	if len(queryTokens) == 0 {
		return response, nil
	}

	products, err := s.repository.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if s.enableDebugLogging {
		log.Printf("[SEARCH] query %q -> tokens %v over %d products", query, queryTokens, len(products))
	}

	// Fan out scoring; each slot is written by exactly one task so the
	// merge preserves catalog insertion order.
	scores := make([]float64, len(products))
	var wg sync.WaitGroup
	for i := range products {
		wg.Add(1)
		index := i
		task := func() {
			defer wg.Done()
			p := products[index]
			scores[index] = s.scorer.Score(queryTokens, p.NormalizedDescription, p.Brand, p.Code)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool saturated or released; score on the caller's goroutine.
			task()
		}
	}
	wg.Wait()

	for i, product := range products {
		if scores[i] > s.minScore {
			response.Results = append(response.Results, domain.ScoredProduct{
				Product:        product,
				RelevanceScore: scores[i],
			})
		}
	}

	// Stable sort keeps equal scores in catalog insertion order.
	sort.SliceStable(response.Results, func(a, b int) bool {
		return response.Results[a].RelevanceScore > response.Results[b].RelevanceScore
	})

	response.TotalCount = len(response.Results)

	if s.enableDebugLogging {
		log.Printf("[SEARCH] query %q matched %d products", query, response.TotalCount)
	}

	return response, nil
}

// Close releases the scoring worker pool
func (s *SearchService) Close() {
	s.pool.Release()
}
