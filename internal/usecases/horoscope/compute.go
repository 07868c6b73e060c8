package horoscopeService

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// Compute produces a full horoscope for a birth. Whole-chart failures
// return ErrChartComputation; per-body nakshatra failures only null the
// affected field and never fail the request.
func (s *Service) Compute(ctx context.Context, birth domain.BirthData) (*domain.HoroscopeData, error) {
	if err := birth.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBirth, err)
	}
	birth = birth.Normalized()

	if data := s.cacheLookup(ctx, birth); data != nil {
		return data, nil
	}

	started := time.Now()

	raw, err := s.Engine.ComputeChart(ctx, birth)
	if err != nil {
		s.Log.Error("engine chart computation failed", "error", err, "dob", birth.DOB)
		s.alert(ctx, fmt.Sprintf("horoscope chart computation failed: %v", err))
		return nil, fmt.Errorf("%w: %v", ErrChartComputation, err)
	}

	placements := formatPlacements(raw.Placements)
	charts := formatCharts(raw.Charts)

	if !domain.ValidHouseIndices(raw.HouseIndices) {
		s.Log.Error("engine returned malformed house indices",
			"count", len(raw.HouseIndices), "dob", birth.DOB)
		return nil, fmt.Errorf("%w: malformed house indices", ErrChartComputation)
	}

	data := &domain.HoroscopeData{
		ID:           uuid.New(),
		Placements:   placements,
		Charts:       charts,
		HouseIndices: raw.HouseIndices,
	}

	s.fillNakshatras(ctx, birth, data)
	s.fillAscendantLord(data)

	s.Log.Info("horoscope computed",
		"horoscope_id", data.ID,
		"charts", len(data.Charts),
		"latency", time.Since(started),
	)

	// side effects are best-effort: a computed chart is always returned
	s.persist(ctx, birth, data)
	s.cacheStore(ctx, birth, data)
	s.publishEvent(ctx, birth, data, time.Since(started))
	s.archiveRaw(ctx, data.ID, raw)

	return data, nil
}

// fillNakshatras fans out per-body nakshatra calls. Each body fails
// independently: an error logs and leaves the entry nil.
func (s *Service) fillNakshatras(ctx context.Context, birth domain.BirthData, data *domain.HoroscopeData) {
	var mu sync.Mutex
	nakshatras := make(map[string]*domain.Nakshatra, len(domain.Grahas))

	g, gCtx := errgroup.WithContext(ctx)

	bodies := append([]string{domain.BodyLagna}, domain.Grahas...)
	for _, body := range bodies {
		body := body
		g.Go(func() error {
			nak, err := s.Engine.ComputeNakshatra(gCtx, birth, body)
			if err != nil {
				s.Log.Warn("nakshatra computation failed, field will be null",
					"body", body,
					"error", err,
				)
				nak = nil
			}

			cleaned := sanitizeNakshatra(nak)
			if nak != nil && cleaned == nil {
				s.Log.Warn("engine returned invalid nakshatra, field will be null",
					"body", body,
					"name", nak.Name,
					"pada", nak.Pada,
				)
			}

			mu.Lock()
			defer mu.Unlock()
			if body == domain.BodyLagna {
				data.AscendantNakshatra = cleaned
			} else {
				nakshatras[body] = cleaned
			}
			return nil
		})
	}

	// goroutines never return errors, failures are per-body
	_ = g.Wait()

	data.Nakshatras = nakshatras
}

// fillAscendantLord derives the Lagna sign's ruling graha from the static
// table; an unknown sign leaves the field null
func (s *Service) fillAscendantLord(data *domain.HoroscopeData) {
	sign := data.Placements[domain.RaasiKey(domain.BodyLagna)]
	if lord, ok := domain.SignLord(sign); ok {
		data.AscendantLord = &lord
		return
	}
	s.Log.Warn("unknown ascendant sign, ascendant_lord will be null", "sign", sign)
}

func (s *Service) persist(ctx context.Context, birth domain.BirthData, data *domain.HoroscopeData) {
	payload, err := json.Marshal(data)
	if err != nil {
		s.Log.Error("failed to marshal horoscope data", "error", err, "horoscope_id", data.ID)
		return
	}

	record := &domain.Horoscope{
		ID:        data.ID,
		BirthDate: birth.DOB,
		BirthTime: birth.Time,
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
		Timezone:  birth.Timezone,
		Language:  birth.Language,
		Data:      payload,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		s.Log.Error("failed to persist horoscope", "error", err, "horoscope_id", data.ID)
		s.alert(ctx, fmt.Sprintf("failed to persist horoscope %s: %v", data.ID, err))
	}
}

func (s *Service) cacheLookup(ctx context.Context, birth domain.BirthData) *domain.HoroscopeData {
	if s.Cache == nil {
		return nil
	}

	cached, err := s.Cache.Get(ctx, birth.CacheKey())
	if err != nil {
		return nil
	}

	var data domain.HoroscopeData
	if err := json.Unmarshal([]byte(cached), &data); err != nil {
		s.Log.Warn("failed to unmarshal cached horoscope, dropping entry", "error", err)
		_ = s.Cache.Delete(ctx, birth.CacheKey())
		return nil
	}

	s.Log.Debug("horoscope cache hit", "horoscope_id", data.ID)
	return &data
}

func (s *Service) cacheStore(ctx context.Context, birth domain.BirthData, data *domain.HoroscopeData) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return
	}

	if err := s.Cache.Set(ctx, birth.CacheKey(), string(payload), s.CacheTTL); err != nil {
		s.Log.Warn("failed to cache horoscope", "error", err, "horoscope_id", data.ID)
	}
}

// computedEvent is the kafka payload emitted after a successful computation
type computedEvent struct {
	HoroscopeID uuid.UUID `json:"horoscope_id"`
	DOB         string    `json:"dob"`
	Time        string    `json:"time"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lng"`
	Timezone    float64   `json:"tz"`
	LatencyMS   int64     `json:"latency_ms"`
	ComputedAt  time.Time `json:"computed_at"`
}

func (s *Service) publishEvent(ctx context.Context, birth domain.BirthData, data *domain.HoroscopeData, latency time.Duration) {
	if s.Producer == nil {
		return
	}

	event := computedEvent{
		HoroscopeID: data.ID,
		DOB:         birth.DOB,
		Time:        birth.Time,
		Latitude:    birth.Latitude,
		Longitude:   birth.Longitude,
		Timezone:    birth.Timezone,
		LatencyMS:   latency.Milliseconds(),
		ComputedAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	if err := s.Producer.Send(ctx, data.ID.String(), payload); err != nil {
		s.Log.Warn("failed to publish computed event", "error", err, "horoscope_id", data.ID)
	}
}

func (s *Service) archiveRaw(ctx context.Context, id uuid.UUID, raw *domain.RawChart) {
	if s.Archive == nil {
		return
	}

	payload, err := json.Marshal(raw)
	if err != nil {
		return
	}

	path := fmt.Sprintf("charts/%s.json", id)
	if err := s.Archive.PutFile(ctx, path, payload, "application/json"); err != nil {
		s.Log.Warn("failed to archive raw chart", "error", err, "horoscope_id", id)
	}
}

func (s *Service) alert(ctx context.Context, message string) {
	if s.Alerter == nil {
		return
	}
	if err := s.Alerter.SendAlert(ctx, message); err != nil {
		s.Log.Warn("failed to send alert", "error", err)
	}
}
