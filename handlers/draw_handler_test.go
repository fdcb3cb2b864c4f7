package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/models"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/services"
)

type fakeDrawService struct {
	details   *services.DrawDetails
	bracket   *services.BracketView
	lastStage *string
	err       error
}

func (f *fakeDrawService) ListTournaments(context.Context, int, int) (*services.TournamentList, error) {
	return &services.TournamentList{}, f.err
}

func (f *fakeDrawService) GetTournament(context.Context, string) (*services.TournamentDetail, error) {
	return nil, f.err
}

func (f *fakeDrawService) ListTournamentDraws(context.Context, string) ([]services.DrawStageView, error) {
	return nil, f.err
}

func (f *fakeDrawService) GetDrawDetails(_ context.Context, _ string, stage *string) (*services.DrawDetails, error) {
	f.lastStage = stage
	return f.details, f.err
}

func (f *fakeDrawService) GetDrawBracket(context.Context, string) (*services.BracketView, error) {
	return f.bracket, f.err
}

func newDrawRouter(svc services.DrawService) *chi.Mux {
	h := NewDrawHandler(svc)
	router := chi.NewRouter()
	router.Get("/draws/{drawID}", h.GetDraw)
	router.Get("/draws/{drawID}/bracket", h.GetDrawBracket)
	return router
}

func TestGetDrawReturnsDetails(t *testing.T) {
	svc := &fakeDrawService{details: &services.DrawDetails{
		Draw:   models.Draw{DrawID: "DRAW-1", DrawName: "Men's Singles"},
		Counts: services.MatchCounts{Total: 3, Completed: 2},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/draws/draw-1", nil)
	newDrawRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body services.DrawDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DRAW-1", body.Draw.DrawID)
	assert.Equal(t, 3, body.Counts.Total)
	assert.Nil(t, svc.lastStage)
}

func TestGetDrawPassesUppercasedStage(t *testing.T) {
	svc := &fakeDrawService{details: &services.DrawDetails{}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/draws/draw-1?stage=qualifying", nil)
	newDrawRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastStage)
	assert.Equal(t, "QUALIFYING", *svc.lastStage)
}

func TestGetDrawNotFound(t *testing.T) {
	svc := &fakeDrawService{err: services.ErrDrawNotFound}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/draws/draw-404", nil)
	newDrawRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDrawBracket(t *testing.T) {
	svc := &fakeDrawService{bracket: &services.BracketView{
		DrawID: "DRAW-1",
		Rounds: 3,
		Positions: []models.BracketPosition{
			{DrawPosition: 1, ParticipantID: "P-1"},
		},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/draws/draw-1/bracket", nil)
	newDrawRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body services.BracketView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Rounds)
	require.Len(t, body.Positions, 1)
}
