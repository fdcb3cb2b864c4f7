package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/draws"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/repositories"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/storage"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/tennisapi"
)

// SweepReport summarizes one full collection sweep over the tracked events.
type SweepReport struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

type CollectorService interface {
	// RunSweep collects every tracked event. Per-event failures are counted
	// and logged, never fatal: the next sweep retries them.
	RunSweep(ctx context.Context) (*SweepReport, error)
	CollectEvent(ctx context.Context, tournamentID, eventID string) error
}

type CollectorConfig struct {
	Concurrency int
	// Delay spaces out upstream requests within a sweep.
	Delay time.Duration
}

type collectorService struct {
	db          *sql.DB
	client      tennisapi.Client
	eventRepo   repositories.EventRepository
	drawRepo    repositories.DrawRepository
	matchRepo   repositories.MatchRepository
	bracketRepo repositories.BracketRepository
	hub         *draws.Hub
	archive     storage.Archive
	logger      *slog.Logger
	cfg         CollectorConfig
}

// NewCollectorService wires the collection pipeline. archive may be nil, in
// which case raw payloads are not retained.
func NewCollectorService(
	db *sql.DB,
	client tennisapi.Client,
	eventRepo repositories.EventRepository,
	drawRepo repositories.DrawRepository,
	matchRepo repositories.MatchRepository,
	bracketRepo repositories.BracketRepository,
	hub *draws.Hub,
	archive storage.Archive,
	logger *slog.Logger,
	cfg CollectorConfig,
) CollectorService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &collectorService{
		db:          db,
		client:      client,
		eventRepo:   eventRepo,
		drawRepo:    drawRepo,
		matchRepo:   matchRepo,
		bracketRepo: bracketRepo,
		hub:         hub,
		archive:     archive,
		logger:      logger,
		cfg:         cfg,
	}
}

func (s *collectorService) RunSweep(ctx context.Context) (*SweepReport, error) {
	runID := uuid.NewString()
	started := time.Now()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for sweep: %w", err)
	}

	logger := s.logger.With(slog.String("run_id", runID))
	logger.Info("starting collection sweep", slog.Int("events", len(events)))

	var succeeded, failed atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Concurrency)

	for _, event := range events {
		event := event
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			if err := s.CollectEvent(groupCtx, event.TournamentID, event.EventID); err != nil {
				failed.Add(1)
				logger.Error("event collection failed",
					slog.String("tournament_id", event.TournamentID),
					slog.String("event_id", event.EventID),
					slog.Any("error", err))
			} else {
				succeeded.Add(1)
			}
			if s.cfg.Delay > 0 {
				select {
				case <-time.After(s.cfg.Delay):
				case <-groupCtx.Done():
					return groupCtx.Err()
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return nil, err
	}

	report := &SweepReport{
		RunID:     runID,
		Total:     len(events),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Elapsed:   time.Since(started),
	}
	logger.Info("collection sweep finished",
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Duration("elapsed", report.Elapsed))
	return report, nil
}

func (s *collectorService) CollectEvent(ctx context.Context, tournamentID, eventID string) error {
	payload, rawBody, err := s.client.FetchEventData(ctx, tournamentID, eventID)
	if err != nil {
		return fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}

	s.archivePayload(ctx, tournamentID, eventID, rawBody)

	lookup := draws.BuildParticipantLookup(payload.Participants)

	for _, rawDraw := range payload.EventData.DrawsData {
		if err := s.processDraw(ctx, rawDraw, lookup, tournamentID, eventID); err != nil {
			// One bad draw does not sink the sibling draws of the event.
			s.logger.Error("draw processing failed",
				slog.String("event_id", eventID),
				slog.String("draw_id", rawDraw.DrawID),
				slog.Any("error", err))
		}
	}
	return nil
}

// archivePayload retains the raw upstream response. Archival is best effort:
// a failed write is logged and collection continues.
func (s *collectorService) archivePayload(ctx context.Context, tournamentID, eventID string, body []byte) {
	if s.archive == nil || len(body) == 0 {
		return
	}
	key := fmt.Sprintf("events/%s/%s/%s.json",
		tournamentID, eventID, time.Now().UTC().Format("20060102T150405Z"))
	if err := s.archive.Put(ctx, key, "application/json", body); err != nil {
		s.logger.Warn("failed to archive raw payload",
			slog.String("event_id", eventID),
			slog.String("key", key),
			slog.Any("error", err))
	}
}

// processDraw reconstructs and persists one draw inside a single transaction,
// so a conflict rolls back that draw alone.
func (s *collectorService) processDraw(ctx context.Context, rawDraw tennisapi.RawDraw, lookup map[string]models.ResolvedParticipant, tournamentID, eventID string) error {
	draw := draws.ExtractDraw(rawDraw, tournamentID, eventID)
	if draw.DrawID == "" {
		return errors.New("draw has no id")
	}

	matches := s.extractMatches(rawDraw, lookup, tournamentID, eventID)
	positions := draws.AssembleBracket(matches)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for draw %s: %w", draw.DrawID, err)
	}
	defer tx.Rollback()

	if err := s.drawRepo.Upsert(ctx, tx, &draw); err != nil {
		return err
	}
	for i := range matches {
		if err := s.matchRepo.Upsert(ctx, tx, &matches[i]); err != nil {
			return err
		}
	}
	if err := s.bracketRepo.ReplaceForDraw(ctx, tx, draw.DrawID, positions); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draw %s: %w", draw.DrawID, err)
	}

	s.logger.Info("draw collected",
		slog.String("draw_id", draw.DrawID),
		slog.String("event_id", eventID),
		slog.Int("matches", len(matches)),
		slog.Int("positions", len(positions)))

	if s.hub != nil {
		s.hub.BroadcastDrawUpdated(draw.DrawID, map[string]interface{}{
			"draw_id":        draw.DrawID,
			"draw_name":      draw.DrawName,
			"matches":        len(matches),
			"draw_completed": draw.DrawCompleted,
		})
	}
	return nil
}

// extractMatches walks the draw's structures in a stable round order and
// reconstructs every match-up that carries an id. Records without one are
// skipped with a warning.
func (s *collectorService) extractMatches(rawDraw tennisapi.RawDraw, lookup map[string]models.ResolvedParticipant, tournamentID, eventID string) []models.TournamentMatch {
	matches := []models.TournamentMatch{}
	for _, structure := range rawDraw.Structures {
		roundKeys := make([]string, 0, len(structure.RoundMatchUps))
		for key := range structure.RoundMatchUps {
			roundKeys = append(roundKeys, key)
		}
		sort.Strings(roundKeys)

		for _, key := range roundKeys {
			for _, rawMatch := range structure.RoundMatchUps[key] {
				match, err := draws.ExtractMatch(rawMatch, lookup, tournamentID, eventID, s.logger)
				if err != nil {
					s.logger.Warn("skipping match-up",
						slog.String("draw_id", rawDraw.DrawID),
						slog.String("round", key),
						slog.Any("error", err))
					continue
				}
				matches = append(matches, match)
			}
		}
	}
	return matches
}
