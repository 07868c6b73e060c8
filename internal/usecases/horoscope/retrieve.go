package horoscopeService

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// GetByID returns a previously stored horoscope payload
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.HoroscopeData, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var data domain.HoroscopeData
	if err := json.Unmarshal(record.Data, &data); err != nil {
		s.Log.Error("failed to unmarshal stored horoscope", "error", err, "horoscope_id", id)
		return nil, fmt.Errorf("failed to unmarshal stored horoscope: %w", err)
	}

	return &data, nil
}
