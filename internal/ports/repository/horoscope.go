package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

// IHoroscopeRepo persists computed charts
type IHoroscopeRepo interface {
	Create(ctx context.Context, horoscope *domain.Horoscope) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Horoscope, error)
}
