package triage

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Predictor is the external ML prediction collaborator. Defined here, on the
// consumer side, to decouple the engine from the transport implementation.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string) (*ExternalPrediction, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	engine    *Engine
	predictor Predictor
}

func NewHandler(engine *Engine, predictor Predictor) *Handler {
	return &Handler{engine: engine, predictor: predictor}
}

// flexInt accepts a JSON number or a numeric string; anything else reads as
// zero. Age arrives from the form as either, and a malformed value must not
// fail the request.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = flexInt(v)
		return nil
	}
	*f = 0
	return nil
}

type TriageRequest struct {
	Symptoms []string `json:"symptoms"`
	Age      flexInt  `json:"age"`
	Gender   string   `json:"gender"`
	Category string   `json:"category"`
}

// TriageResponse is the envelope returned to the presentation layer. The
// rule-based assessment is always present; the merged result only when the
// ML collaborator answered.
type TriageResponse struct {
	ID         uuid.UUID     `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Source     string        `json:"source"`
	Assessment *Result       `json:"assessment"`
	Merged     *MergedResult `json:"merged,omitempty"`
	MLStatus   string        `json:"ml_status"`

	// Display-ready strings for the presentation layer.
	CategoryName    string `json:"category_name"`
	EmergencyReason string `json:"emergency_reason,omitempty"`
}

const (
	sourceRules   = "rules"
	sourceMLRules = "ml+rules"

	mlStatusOK          = "ok"
	mlStatusUnavailable = "unavailable"
)

// HandleTriage runs the rule pipeline, then tries the ML collaborator and
// reconciles its prediction. ML failure degrades to rule-only output; it is
// never a request failure.
func (h *Handler) HandleTriage(w http.ResponseWriter, r *http.Request) {
	var req TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.engine.Assess(req.Symptoms, int(req.Age), req.Gender, Category(strings.ToLower(req.Category)))
	if err != nil {
		http.Error(w, "Please enter at least one symptom", http.StatusBadRequest)
		return
	}

	resp := TriageResponse{
		ID:              uuid.New(),
		Timestamp:       time.Now().UTC(),
		Source:          sourceRules,
		Assessment:      result,
		MLStatus:        mlStatusUnavailable,
		CategoryName:    result.Category.Primary.DisplayName(),
		EmergencyReason: result.Emergency.Reason(),
	}

	if h.predictor != nil {
		ext, err := h.predictor.Predict(r.Context(), result.RawSymptoms)
		if err != nil {
			log.Printf("ml prediction unavailable, using rule-based result: %v", err)
		} else {
			resp.Merged = Reconcile(ext, result)
			resp.Source = sourceMLRules
			resp.MLStatus = mlStatusOK
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleMLStatus is the manual re-check: it pings the ML service once and
// reports reachability.
func (h *Handler) HandleMLStatus(w http.ResponseWriter, r *http.Request) {
	status := mlStatusOK
	if h.predictor == nil {
		status = mlStatusUnavailable
	} else if err := h.predictor.Ping(r.Context()); err != nil {
		log.Printf("ml status check failed: %v", err)
		status = mlStatusUnavailable
	}
	writeJSON(w, http.StatusOK, map[string]string{"ml_status": status})
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/triage", h.HandleTriage)
	r.Get("/ml/status", h.HandleMLStatus)
	r.Get("/health", h.HandleHealthCheck)
}
