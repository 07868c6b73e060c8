package jhora

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

var testBirth = domain.BirthData{
	DOB:       "1994-03-21",
	Time:      "06:45",
	Latitude:  13.0827,
	Longitude: 80.2707,
	Timezone:  5.5,
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComputeChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/horoscope/chart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}

		var req ChartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.DOB != "1994-03-21" || req.Language != "en" {
			t.Errorf("unexpected request %+v", req)
		}

		resp := ChartResponse{
			Placements: map[string]string{
				"Raasi-Lagna": "Aquarius↑",
				"Raasi-Sun":   "Pisces☉",
			},
			Charts: [][]string{
				{"Sun\nMercury", "", "", "Moon", "", "", "", "", "", "", "", ""},
			},
			HouseIndices: []int{11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1", ApiKey: "test-key"}, testLogger())

	raw, err := client.ComputeChart(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("ComputeChart failed: %v", err)
	}

	if raw.Placements["Raasi-Lagna"] != "Aquarius↑" {
		t.Errorf("placements passed through wrong: %q", raw.Placements["Raasi-Lagna"])
	}
	if len(raw.Charts) != 1 || len(raw.Charts[0]) != 12 {
		t.Errorf("unexpected charts shape: %d charts", len(raw.Charts))
	}
	if len(raw.HouseIndices) != 12 {
		t.Errorf("expected 12 house indices, got %d", len(raw.HouseIndices))
	}
}

func TestComputeNakshatra(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/horoscope/nakshatra" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req NakshatraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Body != "Moon" {
			t.Errorf("expected body Moon, got %q", req.Body)
		}

		_ = json.NewEncoder(w).Encode(NakshatraResponse{Name: "Rohini", Pada: 2, Lord: "Moon"})
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1"}, testLogger())

	nak, err := client.ComputeNakshatra(context.Background(), testBirth, "Moon")
	if err != nil {
		t.Fatalf("ComputeNakshatra failed: %v", err)
	}
	if nak.Name != "Rohini" || nak.Pada != 2 || nak.Lord != "Moon" {
		t.Errorf("unexpected nakshatra %+v", nak)
	}
}

func TestComputeChartEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"ephemeris file missing"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1"}, testLogger())

	if _, err := client.ComputeChart(context.Background(), testBirth); err == nil {
		t.Fatal("expected error on engine 500")
	}
}

func TestHealthz(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
	}))
	defer srv.Close()

	client := NewClient(&Config{BaseURL: srv.URL, ApiVersion: "v1"}, testLogger())

	if err := client.Healthz(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}

	status = http.StatusServiceUnavailable
	if err := client.Healthz(context.Background()); err == nil {
		t.Fatal("expected error on unhealthy engine")
	}
}
