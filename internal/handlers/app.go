package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/Lllllllleong/companyseed/internal/callable"
	"github.com/Lllllllleong/companyseed/internal/gcp"
	"github.com/Lllllllleong/companyseed/internal/generator"
	"github.com/Lllllllleong/companyseed/internal/services"
	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Config holds configuration for the company functions.
type Config struct {
	ProjectID      string
	DatabaseID     string
	CollectionName string
	FakerSeed      uint64
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	config := Config{
		ProjectID:      gcp.GetEnv("PROJECT_ID", gcp.GetEnv("GOOGLE_CLOUD_PROJECT", "")),
		DatabaseID:     gcp.GetEnv("FIRESTORE_DATABASE", firestore.DefaultDatabaseID),
		CollectionName: gcp.GetEnv("FIRESTORE_COLLECTION", "companies"),
		FakerSeed:      gcp.GetEnvUint("FAKER_SEED", 0),
	}
	if config.ProjectID == "" {
		return Config{}, fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	return config, nil
}

// App is the process-wide state shared by every invocation: the Firestore
// client and the handlers built over it. It is read-only once constructed.
type App struct {
	*Handlers
	firestoreClient *firestore.Client
}

// NewApp creates a new App instance.
func NewApp(ctx context.Context, config Config) (*App, error) {
	client, err := gcp.NewFirestoreClient(ctx, config.ProjectID, config.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	store, err := gcp.NewCompanyStore(client, config.CollectionName)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	svc := services.NewCompanyService(store, generator.New(config.FakerSeed))

	slog.Info("Company functions initialized.", "projectId", config.ProjectID, "database", config.DatabaseID, "collection", config.CollectionName)
	return &App{Handlers: NewHandlers(svc), firestoreClient: client}, nil
}

// Close releases the Firestore client.
func (a *App) Close() error {
	return a.firestoreClient.Close()
}

var (
	appInstance *App
	once        sync.Once
	initErr     error
)

// instance builds the App on first use. Later calls return the same value.
func instance() (*App, error) {
	once.Do(func() {
		config, err := LoadConfig()
		if err != nil {
			initErr = err
			return
		}
		appInstance, initErr = NewApp(context.Background(), config)
	})
	return appInstance, initErr
}

// errShutdown is reported by entry points invoked after Shutdown when the
// App was never built.
var errShutdown = errors.New("company functions are shut down")

// Shutdown closes the process-wide App if it was ever built. It waits for an
// initialization already in progress.
func Shutdown() error {
	once.Do(func() { initErr = errShutdown })
	if appInstance == nil {
		return nil
	}
	return appInstance.Close()
}

func withApp(w http.ResponseWriter, r *http.Request, serve func(*App, http.ResponseWriter, *http.Request)) {
	app, err := instance()
	if err != nil {
		slog.Error("CRITICAL: Company functions initialization failed", "error", err)
		callable.Handler[json.RawMessage]("init", func(context.Context, json.RawMessage) (any, error) {
			return nil, callable.Errorf(callable.Unavailable, "failed to initialize service")
		})(w, r)
		return
	}
	serve(app, w, r)
}

// CreateCompanies is the createCompanies entry point.
func CreateCompanies(w http.ResponseWriter, r *http.Request) {
	withApp(w, r, func(a *App, w http.ResponseWriter, r *http.Request) { a.CreateCompanies(w, r) })
}

// GetCompanies is the getCompanies entry point.
func GetCompanies(w http.ResponseWriter, r *http.Request) {
	withApp(w, r, func(a *App, w http.ResponseWriter, r *http.Request) { a.GetCompanies(w, r) })
}

// GetCompany is the getCompany entry point.
func GetCompany(w http.ResponseWriter, r *http.Request) {
	withApp(w, r, func(a *App, w http.ResponseWriter, r *http.Request) { a.GetCompany(w, r) })
}

// SeedCompanies is the CloudEvent entry point that runs one seeding batch.
func SeedCompanies(ctx context.Context, e cloudevents.Event) error {
	app, err := instance()
	if err != nil {
		slog.Error("Critical error during function initialization", "error", err)
		return err
	}
	return app.SeedCompanies(ctx, e)
}
