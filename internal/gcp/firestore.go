package gcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloud.google.com/go/firestore"
	"github.com/Lllllllleong/companyseed/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewFirestoreClient creates and returns a new Firestore client for the given project and database.
// An empty databaseID selects the default database.
func NewFirestoreClient(ctx context.Context, projectID, databaseID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

// CompanyStore reads and writes company documents in a single flat collection.
type CompanyStore struct {
	collection *firestore.CollectionRef
}

// NewCompanyStore returns a store over the named collection.
func NewCompanyStore(client *firestore.Client, collection string) (*CompanyStore, error) {
	if client == nil {
		return nil, errors.New("firestore client must not be nil")
	}
	if collection == "" || strings.Contains(collection, "/") {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}
	return &CompanyStore{collection: client.Collection(collection)}, nil
}

// Put writes c as the whole body of document id, replacing any existing body.
func (s *CompanyStore) Put(ctx context.Context, id string, c models.Company) error {
	ref := s.doc(id)
	if ref == nil {
		return fmt.Errorf("invalid document id %q", id)
	}
	if _, err := ref.Set(ctx, c); err != nil {
		return fmt.Errorf("failed to write company %s: %w", id, err)
	}
	return nil
}

// ListSummaries returns the id and name of every company in the store's
// natural iteration order. Only the name field is fetched.
func (s *CompanyStore) ListSummaries(ctx context.Context) ([]models.CompanySummary, error) {
	iter := s.collection.Select("name").Documents(ctx)
	defer iter.Stop()

	var summaries []models.CompanySummary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query companies: %w", err)
		}
		var c models.Company
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode company %s: %w", doc.Ref.ID, err)
		}
		summaries = append(summaries, models.CompanySummary{ID: doc.Ref.ID, Name: c.Name})
	}
	return summaries, nil
}

// Get fetches document id. found is false when the document does not exist
// or id cannot name a document in this collection.
func (s *CompanyStore) Get(ctx context.Context, id string) (c models.Company, found bool, err error) {
	ref := s.doc(id)
	if ref == nil {
		return models.Company{}, false, nil
	}
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Company{}, false, nil
	}
	if err != nil {
		return models.Company{}, false, fmt.Errorf("failed to read company %s: %w", id, err)
	}
	if !snap.Exists() {
		return models.Company{}, false, nil
	}
	if err := snap.DataTo(&c); err != nil {
		return models.Company{}, false, fmt.Errorf("failed to decode company %s: %w", id, err)
	}
	return c, true, nil
}

// doc returns nil for ids that cannot name a document directly under the
// collection: empty, nested paths and invalid UTF-8.
func (s *CompanyStore) doc(id string) *firestore.DocumentRef {
	if id == "" || strings.Contains(id, "/") || !utf8.ValidString(id) {
		return nil
	}
	return s.collection.Doc(id)
}
