package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lllllllleong/companyseed/internal/models"
)

// Error classes surfaced by the company operations. Collaborator errors are
// joined onto one of these so callers can classify them with errors.Is.
var (
	ErrGeneration = errors.New("company generation failed")
	ErrStorage    = errors.New("company storage failed")
)

// CompanyStore is the storage collaborator. Get reports absence through found
// rather than an error.
type CompanyStore interface {
	Put(ctx context.Context, id string, c models.Company) error
	ListSummaries(ctx context.Context) ([]models.CompanySummary, error)
	Get(ctx context.Context, id string) (c models.Company, found bool, err error)
}

// CompanySource is the randomness collaborator.
type CompanySource interface {
	BatchSize() int
	Company() (models.Company, error)
	Identifier() string
}

// CompanyService implements the create, list and get operations.
// It holds no mutable state and is safe for concurrent use.
type CompanyService struct {
	store  CompanyStore
	source CompanySource
}

// NewCompanyService creates a new CompanyService instance.
func NewCompanyService(store CompanyStore, source CompanySource) *CompanyService {
	return &CompanyService{store: store, source: source}
}

// CreateCompanies writes a random-sized batch of generated companies, one
// document at a time. The first failure aborts the batch and leaves earlier
// writes in place.
func (s *CompanyService) CreateCompanies(ctx context.Context) models.Result[models.CreateCompaniesResponse] {
	n := s.source.BatchSize()
	logCtx := slog.With("batchSize", n)
	logCtx.Info("Creating companies.")

	for i := 0; i < n; i++ {
		company, err := s.source.Company()
		if err != nil {
			logCtx.Error("Failed to generate company", "error", err, "index", i)
			return models.Failure[models.CreateCompaniesResponse](models.FailureGeneration, errors.Join(ErrGeneration, err))
		}
		id := s.source.Identifier()

		if err := s.store.Put(ctx, id, company); err != nil {
			logCtx.Error("Failed to write company", "error", err, "id", id, "index", i)
			return models.Failure[models.CreateCompaniesResponse](models.FailureStorage, errors.Join(ErrStorage, err))
		}

		serialized, err := json.Marshal(company)
		if err != nil {
			serialized = []byte(fmt.Sprintf("%+v", company))
		}
		logCtx.Info(fmt.Sprintf("Created company %s with id %s", serialized, id), "id", id)
	}

	logCtx.Info("Company batch complete.")
	return models.Success(models.CreateCompaniesResponse{Data: models.CreateCompaniesSucceeded})
}

// ListCompanies returns the id and name of every stored company, or Empty
// when the collection has no documents.
func (s *CompanyService) ListCompanies(ctx context.Context) models.Result[[]models.CompanySummary] {
	summaries, err := s.store.ListSummaries(ctx)
	if err != nil {
		slog.Error("Failed to list companies", "error", err)
		return models.Failure[[]models.CompanySummary](models.FailureStorage, errors.Join(ErrStorage, err))
	}
	if len(summaries) == 0 {
		slog.Info("No matching documents.")
		return models.Empty[[]models.CompanySummary]()
	}

	companies := make([]models.CompanySummary, 0, len(summaries))
	for _, c := range summaries {
		companies = append(companies, c)
		slog.Info(c.ID+" => "+c.Name, "id", c.ID, "name", c.Name)
	}
	return models.Success(companies)
}

// GetCompany returns the full record stored under id, or Empty when no such
// document exists. Malformed ids are treated as missing.
func (s *CompanyService) GetCompany(ctx context.Context, id string) models.Result[models.Company] {
	company, found, err := s.store.Get(ctx, id)
	if err != nil {
		slog.Error("Failed to read company", "error", err, "id", id)
		return models.Failure[models.Company](models.FailureStorage, errors.Join(ErrStorage, err))
	}
	if !found {
		return models.Empty[models.Company]()
	}
	return models.Success(company)
}
