package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/draws"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200

	stageMain = "MAIN"
)

// TournamentList is one page of tournaments plus the unpaged total.
type TournamentList struct {
	Tournaments []models.Tournament `json:"tournaments"`
	Total       int                 `json:"total"`
	Limit       int                 `json:"limit"`
	Offset      int                 `json:"offset"`
}

// TournamentDetail is a tournament with its events and draw count.
type TournamentDetail struct {
	Tournament models.Tournament        `json:"tournament"`
	Events     []models.TournamentEvent `json:"events"`
	DrawCount  int                      `json:"draw_count"`
}

// DrawStageView is one renderable bracket unit. A stored draw whose matches
// span several stages is presented as one view per stage, each sized from
// that stage's match count.
type DrawStageView struct {
	DrawID        string           `json:"draw_id"`
	TournamentID  string           `json:"tournament_id"`
	EventID       string           `json:"event_id"`
	DrawName      string           `json:"draw_name"`
	Stage         string           `json:"stage"`
	DrawType      string           `json:"draw_type"`
	DrawSize      int              `json:"draw_size"`
	DrawCompleted bool             `json:"draw_completed"`
	EventType     models.EventType `json:"event_type"`
	Gender        models.Gender    `json:"gender"`
	MatchCount    int              `json:"match_count"`
}

// MatchCounts aggregates a draw's match list for the detail endpoint.
type MatchCounts struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Scheduled    int `json:"scheduled"`
	Participants int `json:"participants"`
}

// DrawDetails is the full detail payload: the draw record, its matches in
// bracket walk order, and aggregate counts.
type DrawDetails struct {
	Draw    models.Draw              `json:"draw"`
	Matches []models.TournamentMatch `json:"matches"`
	Counts  MatchCounts              `json:"counts"`
}

// BracketView is the position-indexed bracket of one draw.
type BracketView struct {
	DrawID    string                   `json:"draw_id"`
	DrawName  string                   `json:"draw_name"`
	DrawType  string                   `json:"draw_type"`
	DrawSize  int                      `json:"draw_size"`
	Rounds    int                      `json:"rounds"`
	Positions []models.BracketPosition `json:"positions"`
}

type DrawService interface {
	ListTournaments(ctx context.Context, limit, offset int) (*TournamentList, error)
	GetTournament(ctx context.Context, tournamentID string) (*TournamentDetail, error)
	ListTournamentDraws(ctx context.Context, tournamentID string) ([]DrawStageView, error)
	GetDrawDetails(ctx context.Context, drawID string, stage *string) (*DrawDetails, error)
	GetDrawBracket(ctx context.Context, drawID string) (*BracketView, error)
}

type drawService struct {
	tournamentRepo repositories.TournamentRepository
	eventRepo      repositories.EventRepository
	drawRepo       repositories.DrawRepository
	matchRepo      repositories.MatchRepository
	bracketRepo    repositories.BracketRepository
}

func NewDrawService(
	tournamentRepo repositories.TournamentRepository,
	eventRepo repositories.EventRepository,
	drawRepo repositories.DrawRepository,
	matchRepo repositories.MatchRepository,
	bracketRepo repositories.BracketRepository,
) DrawService {
	return &drawService{
		tournamentRepo: tournamentRepo,
		eventRepo:      eventRepo,
		drawRepo:       drawRepo,
		matchRepo:      matchRepo,
		bracketRepo:    bracketRepo,
	}
}

func (s *drawService) ListTournaments(ctx context.Context, limit, offset int) (*TournamentList, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	tournaments, total, err := s.tournamentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return &TournamentList{
		Tournaments: tournaments,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}, nil
}

func (s *drawService) GetTournament(ctx context.Context, tournamentID string) (*TournamentDetail, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	events, err := s.eventRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for tournament %s: %w", tournamentID, err)
	}
	drawCount, err := s.drawRepo.CountByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count draws for tournament %s: %w", tournamentID, err)
	}

	return &TournamentDetail{
		Tournament: *tournament,
		Events:     events,
		DrawCount:  drawCount,
	}, nil
}

// ListTournamentDraws returns one view per (draw, stage) pair. A stored draw
// whose matches span qualifying and main stages is split so each stage
// renders as its own bracket; a draw with no matches yet comes back as a
// single view under its stored name and size.
func (s *drawService) ListTournamentDraws(ctx context.Context, tournamentID string) ([]DrawStageView, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	drawList, err := s.drawRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	views := []DrawStageView{}
	for _, draw := range drawList {
		stageCounts, err := s.matchRepo.StageCountsByDraw(ctx, draw.DrawID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage counts for draw %s: %w", draw.DrawID, err)
		}

		if len(stageCounts) == 0 {
			views = append(views, stageView(draw, stageMain, draw.DrawName, draw.DrawSize, 0))
			continue
		}

		for _, stage := range sortedStages(stageCounts) {
			count := stageCounts[stage]
			name := draw.DrawName
			if stage != stageMain {
				name = fmt.Sprintf("%s - %s", draw.DrawName, stageLabel(stage))
			}
			views = append(views, stageView(draw, stage, name, count*2, count))
		}
	}
	return views, nil
}

func stageView(draw models.Draw, stage, name string, size, matchCount int) DrawStageView {
	return DrawStageView{
		DrawID:        draw.DrawID,
		TournamentID:  draw.TournamentID,
		EventID:       draw.EventID,
		DrawName:      name,
		Stage:         stage,
		DrawType:      draw.DrawType,
		DrawSize:      size,
		DrawCompleted: draw.DrawCompleted,
		EventType:     draw.EventType,
		Gender:        draw.Gender,
		MatchCount:    matchCount,
	}
}

// sortedStages orders stage keys with MAIN first, then alphabetically.
func sortedStages(counts map[string]int) []string {
	stages := make([]string, 0, len(counts))
	for stage := range counts {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool {
		if (stages[i] == stageMain) != (stages[j] == stageMain) {
			return stages[i] == stageMain
		}
		return stages[i] < stages[j]
	})
	return stages
}

func stageLabel(stage string) string {
	if stage == "" {
		return stage
	}
	lower := strings.ToLower(stage)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func (s *drawService) GetDrawDetails(ctx context.Context, drawID string, stage *string) (*DrawDetails, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawNotFound) {
			return nil, ErrDrawNotFound
		}
		return nil, err
	}

	matches, err := s.matchRepo.ListByDraw(ctx, drawID, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for draw %s: %w", drawID, err)
	}

	return &DrawDetails{
		Draw:    *draw,
		Matches: matches,
		Counts:  countMatches(matches),
	}, nil
}

func countMatches(matches []models.TournamentMatch) MatchCounts {
	counts := MatchCounts{Total: len(matches)}
	participants := map[string]bool{}
	for i := range matches {
		switch matches[i].MatchStatus {
		case models.MatchStatusCompleted:
			counts.Completed++
		case models.MatchStatusScheduled:
			counts.Scheduled++
		}
		for _, side := range []*models.MatchSide{&matches[i].Side1, &matches[i].Side2} {
			if side.ParticipantID != nil {
				participants[*side.ParticipantID] = true
			}
		}
	}
	counts.Participants = len(participants)
	return counts
}

func (s *drawService) GetDrawBracket(ctx context.Context, drawID string) (*BracketView, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawNotFound) {
			return nil, ErrDrawNotFound
		}
		return nil, err
	}

	positions, err := s.bracketRepo.ListByDraw(ctx, drawID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bracket for draw %s: %w", drawID, err)
	}

	return &BracketView{
		DrawID:    draw.DrawID,
		DrawName:  draw.DrawName,
		DrawType:  draw.DrawType,
		DrawSize:  draw.DrawSize,
		Rounds:    draws.RoundsCount(draw.DrawSize),
		Positions: positions,
	}, nil
}
