package generator

import (
	"testing"

	"github.com/Lllllllleong/companyseed/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Company(t *testing.T) {
	g := New(42)

	for i := 0; i < 200; i++ {
		c, err := g.Company()
		require.NoError(t, err)

		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Industry)
		assert.NotEmpty(t, c.Address1)
		assert.NotEmpty(t, c.Address2)
		assert.NotEmpty(t, c.City)
		assert.NotEmpty(t, c.Zip)
		assert.GreaterOrEqual(t, c.Employees, 0)
		assert.LessOrEqual(t, c.Employees, models.MaxEmployees)
	}
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	a, b := New(7), New(7)

	for i := 0; i < 10; i++ {
		ca, err := a.Company()
		require.NoError(t, err)
		cb, err := b.Company()
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
		assert.Equal(t, a.Identifier(), b.Identifier())
	}
}

func TestGenerator_Identifier(t *testing.T) {
	g := New(0)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := g.Identifier()
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "identifier %q is not a UUID", id)
		assert.False(t, seen[id], "duplicate identifier %q", id)
		seen[id] = true
	}
}

func TestGenerator_BatchSize(t *testing.T) {
	g := New(1)

	for i := 0; i < 1000; i++ {
		n := g.BatchSize()
		assert.GreaterOrEqual(t, n, MinBatchSize)
		assert.LessOrEqual(t, n, MaxBatchSize)
	}
}

func TestValidate(t *testing.T) {
	valid := models.Company{
		Name:      "Acme",
		Industry:  "synergy",
		Address1:  "1 Main St",
		Address2:  "Suite 2",
		City:      "Springfield",
		Zip:       "12345",
		Employees: 10,
	}

	tests := []struct {
		name    string
		mutate  func(c *models.Company)
		wantErr bool
	}{
		{name: "complete", mutate: func(c *models.Company) {}},
		{name: "zero employees", mutate: func(c *models.Company) { c.Employees = 0 }},
		{name: "max employees", mutate: func(c *models.Company) { c.Employees = models.MaxEmployees }},
		{name: "missing name", mutate: func(c *models.Company) { c.Name = "" }, wantErr: true},
		{name: "missing zip", mutate: func(c *models.Company) { c.Zip = "" }, wantErr: true},
		{name: "negative employees", mutate: func(c *models.Company) { c.Employees = -1 }, wantErr: true},
		{name: "too many employees", mutate: func(c *models.Company) { c.Employees = models.MaxEmployees + 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := Validate(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIncomplete)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
