package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/ports/service"
)

const engineHealthJobName = "engine-health"

// EngineHealth probes the JHora compute engine on an interval so an
// ephemeris outage is noticed before users hit it
type EngineHealth struct {
	engine   service.IEphemerisEngine
	interval time.Duration
	log      *slog.Logger
}

func NewEngineHealth(engine service.IEphemerisEngine, interval time.Duration, log *slog.Logger) *EngineHealth {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &EngineHealth{
		engine:   engine,
		interval: interval,
		log:      log,
	}
}

func (j *EngineHealth) Name() string {
	return engineHealthJobName
}

func (j *EngineHealth) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *EngineHealth) Run(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := j.engine.Healthz(probeCtx); err != nil {
		j.log.Warn("engine health probe failed", "error", err)
		return fmt.Errorf("engine health probe failed: %w", err)
	}

	j.log.Debug("engine health probe ok")
	return nil
}
