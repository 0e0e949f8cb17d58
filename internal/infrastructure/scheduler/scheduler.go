// Package scheduler runs the timed automations: the morning briefing
// and the end-of-day KPI rollup.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/go-co-op/gocron"
)

// Scheduler drives the daily automation timetable.
type Scheduler struct {
	scheduler       *gocron.Scheduler
	briefingService content.BriefingService
	kpiService      kpi.KPIService
	logger          logger.Logger
}

// NewScheduler creates the automation scheduler from its timetable
// settings. Times are wall-clock in the configured location.
func NewScheduler(settings *config.SchedulerSettings, briefingService content.BriefingService, kpiService kpi.KPIService, logger logger.Logger) (*Scheduler, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler settings: %w", err)
	}

	location, err := time.LoadLocation(settings.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %s: %w", settings.Location, err)
	}

	s := &Scheduler{
		scheduler:       gocron.NewScheduler(location),
		briefingService: briefingService,
		kpiService:      kpiService,
		logger:          logger,
	}

	if _, err := s.scheduler.Every(1).Day().At(settings.BriefingAt).Do(s.runBriefing); err != nil {
		return nil, fmt.Errorf("failed to schedule daily briefing: %w", err)
	}
	if _, err := s.scheduler.Every(1).Day().At(settings.KPIRollupAt).Do(s.runKPIRollup); err != nil {
		return nil, fmt.Errorf("failed to schedule kpi rollup: %w", err)
	}

	return s, nil
}

// StartBlocking runs the timetable until Stop is called.
func (s *Scheduler) StartBlocking() {
	s.logger.Info("Starting automation scheduler with ", len(s.scheduler.Jobs()), " jobs")
	s.scheduler.StartBlocking()
}

// Stop halts the timetable and waits for running jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runBriefing() {
	s.logger.Info("Running scheduled daily briefing")

	result, err := s.briefingService.GenerateDaily(context.Background())
	if err != nil {
		s.logger.Error("Daily briefing failed: ", err)
		return
	}
	if result.Partial {
		s.logger.Warn("Daily briefing completed partially, asset ", result.AssetID)
		return
	}
	s.logger.Info("Daily briefing completed, asset ", result.AssetID)
}

func (s *Scheduler) runKPIRollup() {
	s.logger.Info("Running scheduled kpi rollup")

	daily, err := s.kpiService.Rollup(context.Background(), time.Now().UTC())
	if err != nil {
		s.logger.Error("KPI rollup failed: ", err)
		return
	}
	s.logger.Info("KPI rollup completed for ", daily.Date.Format("2006-01-02"))
}
