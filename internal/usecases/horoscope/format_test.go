package horoscopeService

import (
	"reflect"
	"testing"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Raasi-Sun☉", "Raasi-Sun"},
		{"Moon☾", "Moon"},
		{"Saturn℞", "Saturn"},
		{"Sun\nMoon", "Sun Moon"},
		{"  Aquarius  ", "Aquarius"},
		{"", ""},
	}

	for _, c := range cases {
		if got := cleanText(c.in); got != c.want {
			t.Errorf("cleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPlacements(t *testing.T) {
	raw := map[string]string{
		"Raasi-Lagna↑": "Aquarius",
		"Raasi-Sun☉":   "Pisces☉",
	}

	got := formatPlacements(raw)
	want := map[string]string{
		"Raasi-Lagna": "Aquarius",
		"Raasi-Sun":   "Pisces",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatPlacements = %v, want %v", got, want)
	}
}

func TestFormatCharts(t *testing.T) {
	raw := [][]string{
		{"Sun\nMercury☉", "", "Moon", "", "", "", "", "", "", "", "", ""},
		{"", "Venus", "", "", "", "", "", "", "", "", "", ""},
	}

	charts := formatCharts(raw)

	if len(charts) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(charts))
	}

	// engine order is the divisional factor order: D1 then D2
	d1, ok := charts["D1"]
	if !ok {
		t.Fatal("missing D1")
	}
	if len(d1) != 12 {
		t.Fatalf("D1 has %d houses, want 12", len(d1))
	}
	if !reflect.DeepEqual([]string(d1[0]), []string{"Sun", "Mercury"}) {
		t.Errorf("D1 house 1 = %v", d1[0])
	}
	if len(d1[1]) != 0 {
		t.Errorf("empty house should stay empty, got %v", d1[1])
	}

	if _, ok := charts["D2"]; !ok {
		t.Error("missing D2")
	}
}

func TestFormatChartsTruncatesUnknownFactors(t *testing.T) {
	raw := make([][]string, len(domain.DivisionFactors)+3)
	for i := range raw {
		raw[i] = make([]string, 12)
	}

	charts := formatCharts(raw)
	if len(charts) != len(domain.DivisionFactors) {
		t.Errorf("expected %d charts, got %d", len(domain.DivisionFactors), len(charts))
	}
	if _, ok := charts["D60"]; !ok {
		t.Error("missing D60, the last known factor")
	}
}

func TestSanitizeNakshatra(t *testing.T) {
	// lord backfilled from the Vimshottari table
	got := sanitizeNakshatra(&domain.Nakshatra{Name: "Ashwini", Pada: 1})
	if got == nil || got.Lord != "Ketu" {
		t.Fatalf("expected lord backfill to Ketu, got %+v", got)
	}

	// glyphs stripped from names
	got = sanitizeNakshatra(&domain.Nakshatra{Name: "Rohini☾", Pada: 4, Lord: "Moon"})
	if got == nil || got.Name != "Rohini" {
		t.Fatalf("expected cleaned name Rohini, got %+v", got)
	}

	// invalid records become nil
	for _, n := range []*domain.Nakshatra{
		nil,
		{Name: "Rohini", Pada: 0, Lord: "Moon"},
		{Name: "Rohini", Pada: 5, Lord: "Moon"},
		{Name: "Unknown", Pada: 2},
	} {
		if sanitizeNakshatra(n) != nil {
			t.Errorf("expected nil for %+v", n)
		}
	}
}
