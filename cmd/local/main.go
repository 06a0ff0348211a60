// Command local serves every company function from one process for
// development. Set FUNCTION_TARGET to pick which entry point answers.
package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/Lllllllleong/companyseed/internal/gcp"
	"github.com/Lllllllleong/companyseed/internal/handlers"
	"github.com/joho/godotenv"
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.HTTP("CreateCompanies", handlers.CreateCompanies)
	functions.HTTP("GetCompanies", handlers.GetCompanies)
	functions.HTTP("GetCompany", handlers.GetCompany)
	functions.CloudEvent("SeedCompanies", handlers.SeedCompanies)
}

func main() {
	// Real environment variables take precedence over .env.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env file", "error", err)
	}

	port := gcp.GetEnv("PORT", "8080")
	slog.Info("Starting local functions server.", "port", port, "target", os.Getenv("FUNCTION_TARGET"))

	err := funcframework.Start(port)
	if closeErr := handlers.Shutdown(); closeErr != nil {
		slog.Error("Failed to close clients", "error", closeErr)
	}
	if err != nil {
		slog.Error("Functions server stopped", "error", err)
		os.Exit(1)
	}
}
