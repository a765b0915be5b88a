package service

import (
	"context"

	"github.com/nishanthjadav/financial-backend/internal/domain/models"
	"github.com/nishanthjadav/financial-backend/internal/transform"
)

// StatementFetcher is the provider-facing contract the service depends on.
// Satisfied by *fmp.Client.
type StatementFetcher interface {
	IncomeStatements(ctx context.Context) ([]models.Statement, error)
}

// StatementService defines business logic for listing income statements.
// This decouples HTTP handlers from the provider client.
type StatementService interface {
	ListStatements(ctx context.Context, criteria transform.Criteria, sortBy models.SortKey) ([]models.Statement, error)
}

type statementService struct {
	fetcher StatementFetcher
}

func NewStatementService(fetcher StatementFetcher) StatementService {
	return &statementService{fetcher: fetcher}
}

// ListStatements fetches the full set of records from the provider, then
// applies the filter/sort transform. The upstream result is never cached;
// every call performs a fresh fetch.
func (s *statementService) ListStatements(ctx context.Context, criteria transform.Criteria, sortBy models.SortKey) ([]models.Statement, error) {
	statements, err := s.fetcher.IncomeStatements(ctx)
	if err != nil {
		return nil, err
	}
	return transform.Apply(statements, criteria, sortBy), nil
}
