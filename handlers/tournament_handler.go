package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/services"
)

type TournamentHandler struct {
	drawService services.DrawService
}

func NewTournamentHandler(drawService services.DrawService) *TournamentHandler {
	return &TournamentHandler{drawService: drawService}
}

// ListTournaments handles GET /tournaments?limit=&offset=.
func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	list, err := h.drawService.ListTournaments(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, list, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetTournament handles GET /tournaments/{tournamentID}.
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournamentID := normalize.ID(chi.URLParam(r, "tournamentID"))
	if tournamentID == "" {
		notFoundResponse(w, r)
		return
	}

	detail, err := h.drawService.GetTournament(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, detail, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTournamentDraws handles GET /tournaments/{tournamentID}/draws.
func (h *TournamentHandler) ListTournamentDraws(w http.ResponseWriter, r *http.Request) {
	tournamentID := normalize.ID(chi.URLParam(r, "tournamentID"))
	if tournamentID == "" {
		notFoundResponse(w, r)
		return
	}

	views, err := h.drawService.ListTournamentDraws(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"draws": views}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return value, nil
}
