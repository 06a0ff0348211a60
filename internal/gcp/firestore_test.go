package gcp

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Lllllllleong/companyseed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorStore returns a store over a fresh collection on the Firestore
// emulator, or skips the test when no emulator is configured.
func newEmulatorStore(t *testing.T) *CompanyStore {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := NewFirestoreClient(ctx, "companyseed-test", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewCompanyStore(client, fmt.Sprintf("companies-%d", time.Now().UnixNano()))
	require.NoError(t, err)
	return store
}

func TestNewFirestoreClient_RequiresProject(t *testing.T) {
	_, err := NewFirestoreClient(context.Background(), "", "")
	assert.Error(t, err)
}

func TestNewCompanyStore_Validation(t *testing.T) {
	_, err := NewCompanyStore(nil, "companies")
	assert.Error(t, err)
}

func TestCompanyStore_RoundTrip(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()

	summaries, err := store.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	want := models.Company{
		Name:      "Acme Corp",
		Industry:  "synergy",
		Address1:  "1 Main St",
		Address2:  "Suite 200",
		City:      "Springfield",
		Zip:       "12345",
		Employees: 321,
	}
	require.NoError(t, store.Put(ctx, "acme", want))

	got, found, err := store.Get(ctx, "acme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	summaries, err = store.ListSummaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CompanySummary{{ID: "acme", Name: "Acme Corp"}}, summaries)
}

func TestCompanyStore_GetMissing(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()

	for _, id := range []string{"does-not-exist", "", "a/b"} {
		_, found, err := store.Get(ctx, id)
		assert.NoError(t, err, "id %q", id)
		assert.False(t, found, "id %q", id)
	}
}

// newOfflineStore returns a store whose client points at an address nothing
// listens on. Only calls that never leave the process can succeed.
func newOfflineStore(t *testing.T) *CompanyStore {
	t.Helper()
	t.Setenv("FIRESTORE_EMULATOR_HOST", "127.0.0.1:1")
	client, err := NewFirestoreClient(context.Background(), "companyseed-test", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewCompanyStore(client, "companies")
	require.NoError(t, err)
	return store
}

func TestCompanyStore_MalformedIDs(t *testing.T) {
	store := newOfflineStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "a/b", "/", "bad\xffid"} {
		t.Run(fmt.Sprintf("%q", id), func(t *testing.T) {
			assert.Nil(t, store.doc(id))

			_, found, err := store.Get(ctx, id)
			assert.NoError(t, err)
			assert.False(t, found)

			assert.Error(t, store.Put(ctx, id, models.Company{Name: "x"}))
		})
	}
}

func TestCompanyStore_DocAcceptsPlainID(t *testing.T) {
	store := newOfflineStore(t)

	ref := store.doc("0b9e6a0e-3c4f-4d8e-9a51-2f1f7c3b9d10")
	require.NotNil(t, ref)
	assert.Equal(t, "0b9e6a0e-3c4f-4d8e-9a51-2f1f7c3b9d10", ref.ID)
}

func TestCompanyStore_PutInvalidID(t *testing.T) {
	store := newEmulatorStore(t)
	assert.Error(t, store.Put(context.Background(), "a/b", models.Company{Name: "x"}))
}
