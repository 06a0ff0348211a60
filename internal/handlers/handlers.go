// Package handlers exposes the company operations as Cloud Function entry points.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lllllllleong/companyseed/internal/callable"
	"github.com/Lllllllleong/companyseed/internal/models"
	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// Operations is what the handlers need from the company service.
type Operations interface {
	CreateCompanies(ctx context.Context) models.Result[models.CreateCompaniesResponse]
	ListCompanies(ctx context.Context) models.Result[[]models.CompanySummary]
	GetCompany(ctx context.Context, id string) models.Result[models.Company]
}

// Handlers serves Operations over the callable protocol and CloudEvents.
type Handlers struct {
	ops             Operations
	createCompanies http.HandlerFunc
	getCompanies    http.HandlerFunc
	getCompany      http.HandlerFunc
}

// NewHandlers builds the handlers for ops.
func NewHandlers(ops Operations) *Handlers {
	h := &Handlers{ops: ops}
	h.createCompanies = callable.Handler[json.RawMessage]("createCompanies", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return respond(ops.CreateCompanies(ctx))
	})
	h.getCompanies = callable.Handler[json.RawMessage]("getCompanies", func(ctx context.Context, _ json.RawMessage) (any, error) {
		return respond(ops.ListCompanies(ctx))
	})
	h.getCompany = callable.Handler[models.GetCompanyRequest]("getCompany", func(ctx context.Context, req models.GetCompanyRequest) (any, error) {
		return respond(ops.GetCompany(ctx, req.ID))
	})
	return h
}

// CreateCompanies serves the createCompanies callable.
func (h *Handlers) CreateCompanies(w http.ResponseWriter, r *http.Request) { h.createCompanies(w, r) }

// GetCompanies serves the getCompanies callable.
func (h *Handlers) GetCompanies(w http.ResponseWriter, r *http.Request) { h.getCompanies(w, r) }

// GetCompany serves the getCompany callable.
func (h *Handlers) GetCompany(w http.ResponseWriter, r *http.Request) { h.getCompany(w, r) }

// SeedCompanies runs one seeding batch for an incoming event, typically a
// Pub/Sub message from a scheduler. The event payload is ignored.
func (h *Handlers) SeedCompanies(ctx context.Context, e cloudevents.Event) error {
	logCtx := slog.With("eventId", e.ID(), "eventSource", e.Source(), "eventType", e.Type())
	logCtx.Info("Seeding companies from event.")

	res := h.ops.CreateCompanies(ctx)
	if !res.IsSuccess() {
		logCtx.Error("Seeding failed", "error", res.Err, "failure", res.Failure)
		return fmt.Errorf("seed companies: %w", res.Err)
	}
	logCtx.Info("Seeding complete.")
	return nil
}

// respond maps a Result onto a callable reply. Empty becomes {"data": {}}
// and failures surface as INTERNAL errors, never as the empty sentinel.
func respond[T any](res models.Result[T]) (any, error) {
	switch res.Kind {
	case models.KindSuccess:
		return res.Payload, nil
	case models.KindEmpty:
		return models.EmptyResult{}, nil
	case models.KindFailure:
		return nil, fmt.Errorf("%s failure: %w", res.Failure, res.Err)
	}
	return nil, fmt.Errorf("unexpected result kind %v", res.Kind)
}
