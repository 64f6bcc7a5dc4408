package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"heallink-triage/internal/triage"
)

// ErrUnavailable is returned for every collaborator failure mode: network
// error, timeout, non-2xx status, undecodable payload or an explicit error
// field in the response. The caller falls back to rule-based output; the
// failure is never user-facing.
var ErrUnavailable = errors.New("ml prediction service unavailable")

const defaultTimeout = 5 * time.Second

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the external ML prediction service.
// The timeout bounds the single outbound call; zero means the default.
func NewClient(baseURL string, timeout time.Duration) triage.Predictor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictRequest struct {
	Symptoms []string `json:"symptoms"`
}

// Predict posts the symptom list to the service and decodes its prediction.
// The response is untrusted: fields are extracted individually so one
// malformed field degrades to its zero value instead of failing the request.
func (c *client) Predict(ctx context.Context, symptoms []string) (*triage.ExternalPrediction, error) {
	body, err := json.Marshal(predictRequest{Symptoms: symptoms})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s - %s", ErrUnavailable, resp.Status, string(respBody))
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if msg := getString(raw, "error"); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, msg)
	}

	return &triage.ExternalPrediction{
		PredictedDisease:  getString(raw, "Predicted Disease"),
		Confidence:        getFloat(raw, "Confidence"),
		RiskLevel:         triage.ParseRiskLevel(getString(raw, "Risk Level")),
		SeverityScore:     int(getFloat(raw, "Severity Score")),
		CorrectedSymptoms: getStrings(raw, "Corrected Symptoms"),
		InputSymptoms:     getStrings(raw, "Input Symptoms"),
		Precautions:       getStrings(raw, "Precautions"),
		Description:       getString(raw, "Description"),
		Top3:              getTop3(raw, "Top_3"),
	}, nil
}

// Ping checks reachability with a minimal request. Used by the manual
// re-check endpoint only.
func (c *client) Ping(ctx context.Context) error {
	body, _ := json.Marshal(predictRequest{Symptoms: []string{"test"}})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}
	return nil
}

func getString(raw map[string]json.RawMessage, key string) string {
	var s string
	if msg, ok := raw[key]; ok {
		_ = json.Unmarshal(msg, &s)
	}
	return s
}

func getFloat(raw map[string]json.RawMessage, key string) float64 {
	var f float64
	if msg, ok := raw[key]; ok {
		_ = json.Unmarshal(msg, &f)
	}
	return f
}

func getStrings(raw map[string]json.RawMessage, key string) []string {
	var out []string
	if msg, ok := raw[key]; ok {
		_ = json.Unmarshal(msg, &out)
	}
	return out
}

// getTop3 decodes the service's [label, probability] pair arrays, skipping
// entries that do not fit the shape.
func getTop3(raw map[string]json.RawMessage, key string) []triage.DiseaseProbability {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var pairs [][]json.RawMessage
	if err := json.Unmarshal(msg, &pairs); err != nil {
		return nil
	}
	out := make([]triage.DiseaseProbability, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		var entry triage.DiseaseProbability
		if err := json.Unmarshal(pair[0], &entry.Disease); err != nil {
			continue
		}
		if err := json.Unmarshal(pair[1], &entry.Probability); err != nil {
			continue
		}
		out = append(out, entry)
	}
	return out
}
