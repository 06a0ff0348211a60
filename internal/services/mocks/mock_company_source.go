package mocks

import (
	"github.com/Lllllllleong/companyseed/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCompanySource is a testify mock of services.CompanySource.
type MockCompanySource struct {
	mock.Mock
}

// BatchSize returns the recorded batch size.
func (m *MockCompanySource) BatchSize() int {
	args := m.Called()
	return args.Int(0)
}

// Company returns the recorded company and error.
func (m *MockCompanySource) Company() (models.Company, error) {
	args := m.Called()
	return args.Get(0).(models.Company), args.Error(1)
}

// Identifier returns the recorded identifier.
func (m *MockCompanySource) Identifier() string {
	args := m.Called()
	return args.String(0)
}
