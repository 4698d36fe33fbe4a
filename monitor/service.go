package monitor

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	custodypkg "github.com/maag070208/AXZY-PARK-API/custody"
	entrypkg "github.com/maag070208/AXZY-PARK-API/entry"
	locationpkg "github.com/maag070208/AXZY-PARK-API/location"
	"github.com/maag070208/AXZY-PARK-API/realtime"
)

// Service runs the facility's background sweeps: flagging key assignments
// held open too long and logging a daily occupancy summary. It only reads;
// all state changes stay with the services.
type Service struct {
	cron       *cron.Cron
	custody    custodypkg.Repository
	locations  locationpkg.Repository
	entries    entrypkg.Repository
	hub        *realtime.Hub
	logger     *zap.Logger
	staleAfter time.Duration
}

// New creates a monitor. staleAfter is how long an assignment may stay
// active before the sweep reports it.
func New(custody custodypkg.Repository, locations locationpkg.Repository, entries entrypkg.Repository, hub *realtime.Hub, staleAfter time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cron:       cron.New(),
		custody:    custody,
		locations:  locations,
		entries:    entries,
		hub:        hub,
		logger:     logger,
		staleAfter: staleAfter,
	}
}

// Start schedules the sweeps: stale assignments every five minutes, the
// occupancy summary at 20:00 daily.
func (s *Service) Start() {
	s.logger.Info("starting monitor", zap.Duration("stale_after", s.staleAfter))

	if _, err := s.cron.AddFunc("*/5 * * * *", s.sweepStaleAssignments); err != nil {
		s.logger.Error("failed to schedule stale assignment sweep", zap.Error(err))
	}
	if _, err := s.cron.AddFunc("0 20 * * *", s.logOccupancySummary); err != nil {
		s.logger.Error("failed to schedule occupancy summary", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Service) Stop() {
	s.logger.Info("stopping monitor")
	s.cron.Stop()
}

func (s *Service) sweepStaleAssignments() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-s.staleAfter)
	stale, err := s.custody.ListStaleActive(ctx, cutoff)
	if err != nil {
		s.logger.Error("stale assignment sweep failed", zap.Error(err))
		return
	}
	for i := range stale {
		a := &stale[i]
		s.logger.Warn("key assignment held open too long",
			zap.String("assignment_id", a.ID.String()),
			zap.String("entry_id", a.EntryID.String()),
			zap.Time("started_at", a.StartedAt))
		if s.hub != nil {
			s.hub.Broadcast("assignment.stale", realtime.StaleAssignmentPayload{
				AssignmentID: a.ID.String(),
				EntryID:      a.EntryID.String(),
				StartedAt:    a.StartedAt.Format(time.RFC3339),
			})
		}
	}
}

func (s *Service) logOccupancySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	occupied, err := s.locations.CountOccupied(ctx)
	if err != nil {
		s.logger.Error("occupancy summary failed", zap.Error(err))
		return
	}
	parked, err := s.entries.CountActiveEntries(ctx)
	if err != nil {
		s.logger.Error("occupancy summary failed", zap.Error(err))
		return
	}
	s.logger.Info("daily occupancy summary",
		zap.Int64("occupied_locations", occupied),
		zap.Int64("parked_vehicles", parked))
}
