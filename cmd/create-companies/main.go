package main

import (
	"log/slog"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/Lllllllleong/companyseed/internal/handlers"
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// "CreateCompanies" is the callable entry point; "SeedCompanies" runs the
	// same batch from a Pub/Sub trigger.
	functions.HTTP("CreateCompanies", handlers.CreateCompanies)
	functions.CloudEvent("SeedCompanies", handlers.SeedCompanies)
}

// main is required by the Go Functions Framework.
func main() {}
