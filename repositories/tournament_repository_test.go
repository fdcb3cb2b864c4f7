package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresTournamentRepository(db)

	mock.ExpectQuery(`(?s)SELECT .+ FROM tournaments WHERE tournament_id = \$1`).
		WithArgs("T-404").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "T-404")
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestTournamentListReturnsTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresTournamentRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tournaments`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`(?s)SELECT .+ FROM tournaments\s+ORDER BY start_date_time`).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"tournament_id", "name", "start_date_time", "end_date_time",
			"location_name", "organization_name", "tournament_type", "created_at", "updated_at",
		}).
			AddRow("T-1", "ITA Regionals", now, now, "Palo Alto", "ITA", "DUAL", now, now).
			AddRow("T-2", "Fall Invite", nil, nil, nil, nil, nil, now, now))

	tournaments, total, err := repo.List(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, tournaments, 2)
	assert.Equal(t, "ITA Regionals", tournaments[0].Name)
	assert.Nil(t, tournaments[1].LocationName)
}

func TestEventListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresEventRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM tournament_events ORDER BY tournament_id, event_id`).
		WillReturnRows(sqlmock.NewRows([]string{
			"event_id", "tournament_id", "gender", "event_type", "created_at", "updated_at",
		}).
			AddRow("E-1", "T-1", "MALE", "SINGLES", now, now).
			AddRow("E-2", "T-1", "FEMALE", "DOUBLES", now, now))

	events, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "E-1", events[0].EventID)
	assert.Equal(t, "T-1", events[1].TournamentID)
}
