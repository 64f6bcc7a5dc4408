package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"heallink-triage/internal/triage"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Symptoms []string `json:"symptoms"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPredictSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"Predicted Disease": "Common Cold",
		"Confidence": 0.87,
		"Risk Level": "Medium",
		"Severity Score": 6,
		"Corrected Symptoms": ["cough", "runny_nose"],
		"Input Symptoms": ["cough", "runy nose"],
		"Precautions": ["rest", "stay hydrated"],
		"Description": "A viral infection of the upper respiratory tract.",
		"Top_3": [["Common Cold", 0.87], ["Flu", 0.08], ["Allergy", 0.05]]
	}`)

	c := NewClient(srv.URL, time.Second)
	got, err := c.Predict(context.Background(), []string{"cough", "runy nose"})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if got.PredictedDisease != "Common Cold" {
		t.Errorf("disease = %q", got.PredictedDisease)
	}
	if got.Confidence != 0.87 {
		t.Errorf("confidence = %v", got.Confidence)
	}
	if got.RiskLevel != triage.RiskMedium {
		t.Errorf("risk = %q, want MEDIUM", got.RiskLevel)
	}
	if got.SeverityScore != 6 {
		t.Errorf("severity = %d", got.SeverityScore)
	}
	if !reflect.DeepEqual(got.CorrectedSymptoms, []string{"cough", "runny_nose"}) {
		t.Errorf("corrected = %v", got.CorrectedSymptoms)
	}
	wantTop3 := []triage.DiseaseProbability{
		{Disease: "Common Cold", Probability: 0.87},
		{Disease: "Flu", Probability: 0.08},
		{Disease: "Allergy", Probability: 0.05},
	}
	if !reflect.DeepEqual(got.Top3, wantTop3) {
		t.Errorf("top3 = %v, want %v", got.Top3, wantTop3)
	}
}

// Missing or malformed fields degrade to zero values instead of failing the
// whole prediction.
func TestPredictTolerantDecoding(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"Predicted Disease": "Flu",
		"Confidence": "not a number",
		"Severity Score": null,
		"Top_3": [["Flu"], ["Cold", 0.2], [0.5, "backwards"]]
	}`)

	c := NewClient(srv.URL, time.Second)
	got, err := c.Predict(context.Background(), []string{"fever"})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if got.PredictedDisease != "Flu" {
		t.Errorf("disease = %q", got.PredictedDisease)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", got.Confidence)
	}
	if got.RiskLevel != triage.RiskLow {
		t.Errorf("risk = %q, want LOW default", got.RiskLevel)
	}
	wantTop3 := []triage.DiseaseProbability{{Disease: "Cold", Probability: 0.2}}
	if !reflect.DeepEqual(got.Top3, wantTop3) {
		t.Errorf("top3 = %v, want %v", got.Top3, wantTop3)
	}
}

func TestPredictErrorField(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"error": "model not loaded"}`)
	c := NewClient(srv.URL, time.Second)
	_, err := c.Predict(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestPredictServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `oops`)
	c := NewClient(srv.URL, time.Second)
	_, err := c.Predict(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestPredictMalformedJSON(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{not json`)
	c := NewClient(srv.URL, time.Second)
	_, err := c.Predict(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestPredictConnectionRefused(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.Predict(context.Background(), []string{"cough"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestPing(t *testing.T) {
	ok := newTestServer(t, http.StatusOK, `{}`)
	if err := NewClient(ok.URL, time.Second).Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}

	bad := newTestServer(t, http.StatusServiceUnavailable, `{}`)
	err := NewClient(bad.URL, time.Second).Ping(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
