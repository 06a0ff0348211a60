package mocks

import (
	"context"

	"github.com/Lllllllleong/companyseed/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCompanyStore is a testify mock of services.CompanyStore.
type MockCompanyStore struct {
	mock.Mock
}

// Put records a write and returns the recorded error.
func (m *MockCompanyStore) Put(ctx context.Context, id string, c models.Company) error {
	args := m.Called(ctx, id, c)
	return args.Error(0)
}

// ListSummaries returns the recorded summaries and error.
func (m *MockCompanyStore) ListSummaries(ctx context.Context) ([]models.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanySummary), args.Error(1)
}

// Get returns the recorded company, found flag and error.
func (m *MockCompanyStore) Get(ctx context.Context, id string) (models.Company, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Company), args.Bool(1), args.Error(2)
}
