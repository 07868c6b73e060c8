package horoscopeRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/ports/persistence"
	ports "github.com/dhanmoti/vedic-chart-backend-2/internal/ports/repository"
)

type horoscopeColumns struct {
	TableName string
	ID        string
	BirthDate string
	BirthTime string
	Latitude  string
	Longitude string
	Timezone  string
	Language  string
	Data      string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns horoscopeColumns
}

// New creates the horoscopes repository
func New(db persistence.Persistence, log *slog.Logger) ports.IHoroscopeRepo {
	cols := horoscopeColumns{
		TableName: "horoscopes",
		ID:        "id",
		BirthDate: "birth_date",
		BirthTime: "birth_time",
		Latitude:  "latitude",
		Longitude: "longitude",
		Timezone:  "timezone",
		Language:  "language",
		Data:      "data",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.Latitude,
		r.columns.Longitude,
		r.columns.Timezone,
		r.columns.Language,
		r.columns.Data,
		r.columns.CreatedAt)
}

// Create stores a computed horoscope
func (r *Repository) Create(ctx context.Context, horoscope *domain.Horoscope) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (:%s, :%s, :%s, :%s, :%s, :%s, :%s, :%s, :%s)`,
		r.columns.TableName,
		r.allColumns(),
		r.columns.ID,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.Latitude,
		r.columns.Longitude,
		r.columns.Timezone,
		r.columns.Language,
		r.columns.Data,
		r.columns.CreatedAt)
	err := r.db.NamedExec(ctx, query, horoscope)
	if err != nil {
		r.Log.Error("failed to create horoscope",
			"error", err,
			"horoscope_id", horoscope.ID)
		return fmt.Errorf("failed to create horoscope: %w", err)
	}
	r.Log.Debug("horoscope created successfully", "horoscope_id", horoscope.ID)
	return nil
}

// GetByID returns a stored horoscope
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Horoscope, error) {
	var horoscope domain.Horoscope
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.Get(ctx, &horoscope, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("horoscope not found", "horoscope_id", id)
			return nil, fmt.Errorf("%w: %s", domain.ErrHoroscopeNotFound, id)
		}
		r.Log.Error("failed to get horoscope by id",
			"error", err,
			"horoscope_id", id)
		return nil, fmt.Errorf("failed to get horoscope by id: %w", err)
	}
	r.Log.Debug("horoscope retrieved successfully", "horoscope_id", id)
	return &horoscope, nil
}
