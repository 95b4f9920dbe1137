package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/league-manager/services"
	"github.com/go-chi/chi/v5"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(ls services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: ls}
}

// ListLeagues godoc
// @Summary Список лиг
// @Tags leagues
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leagues [get]
func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.leagueService.ListLeagues(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leagues": leagues}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTeams godoc
// @Summary Клубы лиги
// @Tags leagues
// @Produce json
// @Param leagueID path string true "League ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Лига не найдена"
// @Router /leagues/{leagueID}/teams [get]
func (h *LeagueHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID == "" {
		badRequestResponse(w, r, errors.New("missing leagueID in URL path"))
		return
	}

	teams, err := h.leagueService.ListTeams(r.Context(), leagueID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"league_id": leagueID, "teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
