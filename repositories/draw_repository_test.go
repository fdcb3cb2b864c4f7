package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
)

type DrawRepositoryTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo DrawRepository
}

func (s *DrawRepositoryTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	require.NoError(s.T(), err)
	s.db = db
	s.mock = mock
	s.repo = NewPostgresDrawRepository(db)
}

func (s *DrawRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *DrawRepositoryTestSuite) TestUpsertInsertsAndReturnsTimestamps() {
	now := time.Now()
	draw := &models.Draw{
		DrawID:       "DRAW-1",
		TournamentID: "T-1",
		EventID:      "E-1",
		DrawName:     "Men's Singles",
		DrawType:     "SINGLE_ELIMINATION",
		DrawSize:     16,
		DrawActive:   true,
		EventType:    models.EventTypeSingles,
		Gender:       models.GenderMale,
	}

	s.mock.ExpectQuery(`INSERT INTO tournament_draws`).
		WithArgs(
			draw.DrawID, draw.TournamentID, draw.EventID, draw.DrawName, draw.DrawType,
			draw.DrawSize, draw.DrawActive, draw.DrawCompleted, draw.EventType, draw.Gender,
			draw.MatchUpFormat, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := s.repo.Upsert(context.Background(), nil, draw)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), now, draw.CreatedAt)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *DrawRepositoryTestSuite) TestGetByIDNotFound() {
	s.mock.ExpectQuery(`(?s)SELECT .+ FROM tournament_draws WHERE draw_id = \$1`).
		WithArgs("DRAW-404").
		WillReturnError(sql.ErrNoRows)

	_, err := s.repo.GetByID(context.Background(), "DRAW-404")
	assert.ErrorIs(s.T(), err, ErrDrawNotFound)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *DrawRepositoryTestSuite) TestListByTournament() {
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"draw_id", "tournament_id", "event_id", "draw_name", "draw_type", "draw_size",
		"draw_active", "draw_completed", "event_type", "gender", "match_up_format",
		"updated_at_api", "created_at", "updated_at",
	}).
		AddRow("DRAW-1", "T-1", "E-1", "Men's Singles", "SINGLE_ELIMINATION", 16,
			true, false, "SINGLES", "MALE", "SET3-S:6/TB7", nil, now, now).
		AddRow("DRAW-2", "T-1", "E-1", "Men's Doubles", "SINGLE_ELIMINATION", 8,
			true, true, "DOUBLES", "MALE", "", nil, now, now)

	s.mock.ExpectQuery(`(?s)SELECT .+ FROM tournament_draws WHERE tournament_id = \$1`).
		WithArgs("T-1").
		WillReturnRows(rows)

	draws, err := s.repo.ListByTournament(context.Background(), "T-1")
	require.NoError(s.T(), err)
	require.Len(s.T(), draws, 2)
	assert.Equal(s.T(), "DRAW-1", draws[0].DrawID)
	assert.Equal(s.T(), models.EventTypeDoubles, draws[1].EventType)
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *DrawRepositoryTestSuite) TestCountByTournament() {
	s.mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tournament_draws WHERE tournament_id = \$1`).
		WithArgs("T-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.repo.CountByTournament(context.Background(), "T-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 3, count)
}

func TestDrawRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DrawRepositoryTestSuite))
}
