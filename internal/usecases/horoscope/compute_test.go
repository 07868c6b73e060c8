package horoscopeService

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

var testBirth = domain.BirthData{
	DOB:       "1990-02-11",
	Time:      "04:30",
	Latitude:  28.6139,
	Longitude: 77.209,
	Timezone:  5.5,
}

// fakeEngine scripts the compute engine behavior per test
type fakeEngine struct {
	chart        *domain.RawChart
	chartErr     error
	nakshatras   map[string]*domain.Nakshatra
	nakshatraErr map[string]error
}

func (f *fakeEngine) ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.RawChart, error) {
	if f.chartErr != nil {
		return nil, f.chartErr
	}
	return f.chart, nil
}

func (f *fakeEngine) ComputeNakshatra(ctx context.Context, birth domain.BirthData, body string) (*domain.Nakshatra, error) {
	if err, ok := f.nakshatraErr[body]; ok {
		return nil, err
	}
	if nak, ok := f.nakshatras[body]; ok {
		return nak, nil
	}
	return &domain.Nakshatra{Name: "Ashwini", Pada: 1, Lord: "Ketu"}, nil
}

func (f *fakeEngine) Healthz(ctx context.Context) error { return nil }

// fakeRepo records persisted horoscopes in memory
type fakeRepo struct {
	created   []*domain.Horoscope
	createErr error
}

func (f *fakeRepo) Create(ctx context.Context, h *domain.Horoscope) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, h)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Horoscope, error) {
	for _, h := range f.created {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, errors.New("horoscope not found")
}

// fakeCache is a map-backed cache.Cache
type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string]string{}} }

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.entries[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func goodChart() *domain.RawChart {
	return &domain.RawChart{
		Placements: map[string]string{
			"Raasi-Lagna↑": "Aquarius",
			"Raasi-Sun☉":   "Capricorn",
			"Raasi-Moon☾":  "Taurus",
		},
		Charts: [][]string{
			{"Sun", "", "", "Moon", "", "", "", "", "", "", "", ""},
		},
		HouseIndices: []int{11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
}

func newTestService(engine *fakeEngine, repo *fakeRepo) *Service {
	return New(engine, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestComputeSuccess(t *testing.T) {
	engine := &fakeEngine{
		chart: goodChart(),
		nakshatras: map[string]*domain.Nakshatra{
			domain.BodyLagna: {Name: "Dhanishta", Pada: 3, Lord: "Mars"},
			"Moon":           {Name: "Rohini", Pada: 2, Lord: "Moon"},
		},
	}
	repo := &fakeRepo{}
	svc := newTestService(engine, repo)

	data, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if data.Placements["Raasi-Lagna"] != "Aquarius" {
		t.Errorf("Raasi-Lagna = %q, want Aquarius", data.Placements["Raasi-Lagna"])
	}
	if data.AscendantLord == nil || *data.AscendantLord != "Saturn" {
		t.Errorf("ascendant_lord = %v, want Saturn", data.AscendantLord)
	}
	if data.AscendantNakshatra == nil || data.AscendantNakshatra.Name != "Dhanishta" {
		t.Errorf("ascendant_nakshatra = %+v", data.AscendantNakshatra)
	}
	if data.AscendantNakshatra.Pada < 1 || data.AscendantNakshatra.Pada > 4 {
		t.Errorf("pada out of range: %d", data.AscendantNakshatra.Pada)
	}

	if len(data.HouseIndices) != 12 {
		t.Errorf("house_indices has %d entries, want 12", len(data.HouseIndices))
	}
	if len(data.Charts) == 0 || data.Charts["D1"] == nil {
		t.Error("charts missing D1")
	}

	// every graha has an entry; all present ones valid
	for _, body := range domain.Grahas {
		nak, ok := data.Nakshatras[body]
		if !ok {
			t.Errorf("missing nakshatra entry for %s", body)
			continue
		}
		if nak != nil && (nak.Pada < 1 || nak.Pada > 4) {
			t.Errorf("%s pada out of range: %d", body, nak.Pada)
		}
	}

	if len(repo.created) != 1 {
		t.Errorf("expected 1 persisted horoscope, got %d", len(repo.created))
	}
}

func TestComputePartialNakshatraFailure(t *testing.T) {
	engine := &fakeEngine{
		chart: goodChart(),
		nakshatraErr: map[string]error{
			"Moon":           errors.New("boundary computation failed"),
			domain.BodyLagna: errors.New("boundary computation failed"),
		},
	}
	svc := newTestService(engine, &fakeRepo{})

	data, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("per-body failure must not fail the request: %v", err)
	}

	if nak, ok := data.Nakshatras["Moon"]; !ok || nak != nil {
		t.Errorf("Moon nakshatra should be an explicit null, got %v (present=%v)", nak, ok)
	}
	if data.AscendantNakshatra != nil {
		t.Errorf("ascendant_nakshatra should be null, got %+v", data.AscendantNakshatra)
	}

	// the rest of the response is intact
	if data.Placements["Raasi-Lagna"] != "Aquarius" {
		t.Error("placements lost on partial failure")
	}
	if nak := data.Nakshatras["Sun"]; nak == nil {
		t.Error("unaffected body should keep its nakshatra")
	}
}

func TestComputeInvalidEngineNakshatraBecomesNull(t *testing.T) {
	engine := &fakeEngine{
		chart: goodChart(),
		nakshatras: map[string]*domain.Nakshatra{
			"Mars": {Name: "Chitra", Pada: 7, Lord: "Mars"}, // pada out of range
		},
	}
	svc := newTestService(engine, &fakeRepo{})

	data, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if nak, ok := data.Nakshatras["Mars"]; !ok || nak != nil {
		t.Errorf("invalid engine record should become null, got %v", nak)
	}
}

func TestComputeUnknownAscendantSignNullsLord(t *testing.T) {
	unknownLagna := func(chart *domain.RawChart) *domain.RawChart {
		chart.Placements["Raasi-Lagna↑"] = "Makara" // not a sign the lord table knows
		return chart
	}
	missingLagna := func(chart *domain.RawChart) *domain.RawChart {
		delete(chart.Placements, "Raasi-Lagna↑")
		return chart
	}

	for name, chart := range map[string]*domain.RawChart{
		"unknown sign":      unknownLagna(goodChart()),
		"missing placement": missingLagna(goodChart()),
	} {
		svc := newTestService(&fakeEngine{chart: chart}, &fakeRepo{})

		data, err := svc.Compute(context.Background(), testBirth)
		if err != nil {
			t.Fatalf("%s: request must still succeed: %v", name, err)
		}
		if data.AscendantLord != nil {
			t.Errorf("%s: ascendant_lord = %q, want null", name, *data.AscendantLord)
		}
	}
}

func TestComputeInvalidBirth(t *testing.T) {
	svc := newTestService(&fakeEngine{chart: goodChart()}, &fakeRepo{})

	cases := []domain.BirthData{
		{DOB: "11-02-1990", Time: "04:30", Latitude: 0, Longitude: 0},
		{DOB: "1990-02-11", Time: "4:3pm", Latitude: 0, Longitude: 0},
		{DOB: "1990-02-11", Time: "04:30", Latitude: 91},
		{DOB: "1990-02-11", Time: "04:30", Longitude: -181},
		{DOB: "1990-02-11", Time: "04:30", Timezone: 15},
	}

	for i, birth := range cases {
		if _, err := svc.Compute(context.Background(), birth); !errors.Is(err, ErrInvalidBirth) {
			t.Errorf("case %d: expected ErrInvalidBirth, got %v", i, err)
		}
	}
}

func TestComputeEngineFailure(t *testing.T) {
	engine := &fakeEngine{chartErr: errors.New("ephemeris unavailable")}
	svc := newTestService(engine, &fakeRepo{})

	if _, err := svc.Compute(context.Background(), testBirth); !errors.Is(err, ErrChartComputation) {
		t.Fatalf("expected ErrChartComputation, got %v", err)
	}
}

func TestComputeMalformedHouseIndices(t *testing.T) {
	chart := goodChart()
	chart.HouseIndices = []int{1, 2, 3} // engine contract violation
	svc := newTestService(&fakeEngine{chart: chart}, &fakeRepo{})

	if _, err := svc.Compute(context.Background(), testBirth); !errors.Is(err, ErrChartComputation) {
		t.Fatalf("expected ErrChartComputation, got %v", err)
	}
}

func TestComputePersistFailureDoesNotFailRequest(t *testing.T) {
	svc := newTestService(&fakeEngine{chart: goodChart()}, &fakeRepo{createErr: errors.New("db down")})

	data, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("persist failure must not fail the request: %v", err)
	}
	if data == nil || len(data.Placements) == 0 {
		t.Error("expected computed data despite persist failure")
	}
}

func TestComputeCacheRoundTrip(t *testing.T) {
	engine := &fakeEngine{chart: goodChart()}
	repo := &fakeRepo{}
	svc := newTestService(engine, repo).WithCache(newFakeCache(), time.Hour)

	first, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("first Compute failed: %v", err)
	}

	// second call must come from cache: break the engine to prove it
	engine.chartErr = errors.New("engine gone")

	second, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("cached Compute failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("cache returned a different horoscope: %s vs %s", second.ID, first.ID)
	}
	if len(repo.created) != 1 {
		t.Errorf("cached hit should not persist again, got %d records", len(repo.created))
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(&fakeEngine{chart: goodChart()}, repo)

	computed, err := svc.Compute(context.Background(), testBirth)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	got, err := svc.GetByID(context.Background(), computed.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ID != computed.ID {
		t.Errorf("GetByID returned %s, want %s", got.ID, computed.ID)
	}

	var stored domain.HoroscopeData
	if err := json.Unmarshal(repo.created[0].Data, &stored); err != nil {
		t.Fatalf("stored payload is not valid JSON: %v", err)
	}
	if stored.Placements["Raasi-Lagna"] != "Aquarius" {
		t.Error("stored payload lost placements")
	}
}
