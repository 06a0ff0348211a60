// Package generator produces synthetic company records from gofakeit.
package generator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Lllllllleong/companyseed/internal/models"
	"github.com/brianvoe/gofakeit/v7"
)

// Bounds of a single seeding batch, inclusive.
const (
	MinBatchSize = 1
	MaxBatchSize = 100
)

// ErrIncomplete is returned when the provider yields a record with a blank field.
var ErrIncomplete = errors.New("generated company is incomplete")

var secondaryPrefixes = []string{"Apt.", "Suite"}

// Generator draws companies, identifiers and batch sizes from a single faker.
// It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// New returns a Generator. A zero seed picks a random one.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Company returns one fully populated company record.
func (g *Generator) Company() (models.Company, error) {
	g.mu.Lock()
	c := models.Company{
		Name:      g.faker.Company(),
		Industry:  g.faker.BuzzWord(),
		Address1:  g.faker.Street(),
		Address2:  fmt.Sprintf("%s %d", g.faker.RandomString(secondaryPrefixes), g.faker.Number(1, 999)),
		City:      g.faker.City(),
		Zip:       g.faker.Zip(),
		Employees: g.faker.IntRange(0, models.MaxEmployees),
	}
	g.mu.Unlock()

	if err := Validate(c); err != nil {
		return models.Company{}, err
	}
	return c, nil
}

// Identifier returns a UUID-format document key.
func (g *Generator) Identifier() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.UUID()
}

// BatchSize returns how many companies one seeding run writes.
func (g *Generator) BatchSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faker.IntRange(MinBatchSize, MaxBatchSize)
}

// Validate checks that every field of c is populated and in range.
func Validate(c models.Company) error {
	fields := map[string]string{
		"name":     c.Name,
		"industry": c.Industry,
		"address1": c.Address1,
		"address2": c.Address2,
		"city":     c.City,
		"zip":      c.Zip,
	}
	for field, v := range fields {
		if v == "" {
			return fmt.Errorf("%w: %s is empty", ErrIncomplete, field)
		}
	}
	if c.Employees < 0 || c.Employees > models.MaxEmployees {
		return fmt.Errorf("%w: employees %d out of range", ErrIncomplete, c.Employees)
	}
	return nil
}
