package service

import (
	"context"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// IEphemerisEngine is the boundary to the external JHora compute engine.
// All ephemeris and nakshatra boundary math happens behind it.
type IEphemerisEngine interface {
	// ComputeChart returns the raw placements, divisional charts and house
	// indices for a birth
	ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.RawChart, error)

	// ComputeNakshatra returns the nakshatra of a single body. Failures are
	// per-body and never abort the rest of a horoscope.
	ComputeNakshatra(ctx context.Context, birth domain.BirthData, body string) (*domain.Nakshatra, error)

	// Healthz probes the engine
	Healthz(ctx context.Context) error
}
