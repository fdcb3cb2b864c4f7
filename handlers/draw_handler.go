package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/normalize"
	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/services"
)

type DrawHandler struct {
	drawService services.DrawService
}

func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// GetDraw handles GET /draws/{drawID}?stage=.
func (h *DrawHandler) GetDraw(w http.ResponseWriter, r *http.Request) {
	drawID := normalize.ID(chi.URLParam(r, "drawID"))
	if drawID == "" {
		notFoundResponse(w, r)
		return
	}

	var stage *string
	if raw := strings.TrimSpace(r.URL.Query().Get("stage")); raw != "" {
		upper := strings.ToUpper(raw)
		stage = &upper
	}

	details, err := h.drawService.GetDrawDetails(r.Context(), drawID, stage)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, details, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetDrawBracket handles GET /draws/{drawID}/bracket.
func (h *DrawHandler) GetDrawBracket(w http.ResponseWriter, r *http.Request) {
	drawID := normalize.ID(chi.URLParam(r, "drawID"))
	if drawID == "" {
		notFoundResponse(w, r)
		return
	}

	bracket, err := h.drawService.GetDrawBracket(r.Context(), drawID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
