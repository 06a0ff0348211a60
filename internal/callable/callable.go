// Package callable serves functions over the Firebase callable HTTPS protocol:
// requests carry {"data": ...}, successful responses carry {"result": ...} and
// failures carry {"error": {"status": ..., "message": ...}}.
package callable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Status is a canonical callable error status.
type Status string

const (
	InvalidArgument Status = "INVALID_ARGUMENT"
	NotFound        Status = "NOT_FOUND"
	Internal        Status = "INTERNAL"
	Unavailable     Status = "UNAVAILABLE"
)

// httpStatus maps each callable status onto its HTTP status code.
var httpStatus = map[Status]int{
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	Internal:        http.StatusInternalServerError,
	Unavailable:     http.StatusServiceUnavailable,
}

// maxBodyBytes bounds the size of a request body.
const maxBodyBytes = 1 << 20

// Error is returned by a Func to send a specific status to the caller.
// Any other error is reported as INTERNAL without its message.
type Error struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// Errorf builds an *Error with a formatted message.
func Errorf(status Status, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Func handles one decoded callable request. Req is decoded from the "data"
// member of the request body; a missing member leaves Req as its zero value.
type Func[Req any] func(ctx context.Context, req Req) (any, error)

type requestEnvelope[Req any] struct {
	Data *Req `json:"data"`
}

type resultEnvelope struct {
	Result any `json:"result"`
}

type errorEnvelope struct {
	Error *Error `json:"error"`
}

// Handler adapts fn into an http.HandlerFunc speaking the callable protocol.
func Handler[Req any](name string, fn Func[Req]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logCtx := slog.With("function", name)
		setCORSHeaders(w, r)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, logCtx, Errorf(InvalidArgument, "request method %s is not POST", r.Method))
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
			writeError(w, logCtx, Errorf(InvalidArgument, "unsupported content type %q", ct))
			return
		}

		req, err := decode[Req](r.Body)
		if err != nil {
			logCtx.Error("Could not decode request body", "error", err)
			writeError(w, logCtx, Errorf(InvalidArgument, "bad request: could not parse JSON"))
			return
		}

		result, err := fn(r.Context(), req)
		if err != nil {
			var cerr *Error
			if !errors.As(err, &cerr) {
				logCtx.Error("Function failed", "error", err)
				cerr = &Error{Status: Internal, Message: string(Internal)}
			}
			writeError(w, logCtx, cerr)
			return
		}

		writeJSON(w, logCtx, http.StatusOK, resultEnvelope{Result: result})
	}
}

func decode[Req any](body io.Reader) (Req, error) {
	var zero Req
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return zero, fmt.Errorf("failed to read body: %w", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return zero, nil
	}
	var env requestEnvelope[Req]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if env.Data == nil {
		return zero, nil
	}
	return *env.Data, nil
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Firebase-AppCheck")
	h.Set("Access-Control-Max-Age", "3600")
	h.Add("Vary", "Origin")
}

func writeError(w http.ResponseWriter, logCtx *slog.Logger, cerr *Error) {
	code, ok := httpStatus[cerr.Status]
	if !ok {
		code = http.StatusInternalServerError
	}
	writeJSON(w, logCtx, code, errorEnvelope{Error: cerr})
}

func writeJSON(w http.ResponseWriter, logCtx *slog.Logger, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logCtx.Error("Failed to write response", "error", err)
	}
}
