package horoscopeService

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/ports/cache"
	kafkaPorts "github.com/dhanmoti/vedic-chart-backend-2/internal/ports/kafka"
	ports "github.com/dhanmoti/vedic-chart-backend-2/internal/ports/repository"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/ports/service"
	"github.com/dhanmoti/vedic-chart-backend-2/internal/ports/storage"
)

var (
	// ErrInvalidBirth marks unusable input (bad formats, out-of-range
	// coordinates); mapped to 400 by the controller
	ErrInvalidBirth = errors.New("invalid birth data")

	// ErrChartComputation marks a whole-chart failure from the engine;
	// also mapped to 400, matching the legacy API contract
	ErrChartComputation = errors.New("chart computation failed")
)

// Service computes, formats and stores horoscopes.
// Engine and Repo are required; Cache, Producer, Archive and Alerter are
// optional and nil-safe.
type Service struct {
	Engine   service.IEphemerisEngine
	Repo     ports.IHoroscopeRepo
	Cache    cache.Cache
	Producer kafkaPorts.IProducer
	Archive  storage.IS3Client
	Alerter  service.IAlerterService
	CacheTTL time.Duration
	Log      *slog.Logger
}

func New(
	engine service.IEphemerisEngine,
	repo ports.IHoroscopeRepo,
	log *slog.Logger,
) *Service {
	return &Service{
		Engine:   engine,
		Repo:     repo,
		CacheTTL: 24 * time.Hour,
		Log:      log,
	}
}

// WithCache attaches a response cache
func (s *Service) WithCache(c cache.Cache, ttl time.Duration) *Service {
	s.Cache = c
	if ttl > 0 {
		s.CacheTTL = ttl
	}
	return s
}

// WithProducer attaches the events producer
func (s *Service) WithProducer(p kafkaPorts.IProducer) *Service {
	s.Producer = p
	return s
}

// WithArchive attaches the raw payload archive
func (s *Service) WithArchive(a storage.IS3Client) *Service {
	s.Archive = a
	return s
}

// WithAlerter attaches the ops alerter
func (s *Service) WithAlerter(a service.IAlerterService) *Service {
	s.Alerter = a
	return s
}
