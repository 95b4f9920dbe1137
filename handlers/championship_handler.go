package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/league-manager/middleware"
	"github.com/Dosada05/league-manager/services"
)

type ChampionshipHandler struct {
	championshipService services.ChampionshipService
}

func NewChampionshipHandler(cs services.ChampionshipService) *ChampionshipHandler {
	return &ChampionshipHandler{
		championshipService: cs,
	}
}

type startSeasonInput struct {
	LeagueID string `json:"league_id"`
	TeamID   string `json:"team_id"`
}

type resolveRoundInput struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

// StartSeason godoc
// @Summary Начать сезон
// @Tags championships
// @Description Создаёт расписание и нулевую таблицу. Если у пользователя уже есть чемпионат в этой лиге, возвращается он.
// @Accept json
// @Produce json
// @Param input body startSeasonInput true "Лига и команда пользователя"
// @Success 201 {object} map[string]interface{} "Сезон создан"
// @Success 200 {object} map[string]interface{} "Сезон уже существует"
// @Failure 404 {object} map[string]string "Лига или команда не найдена"
// @Failure 409 {object} map[string]string "Команда не из этой лиги"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /championships [post]
func (h *ChampionshipHandler) StartSeason(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input startSeasonInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	validation := make(map[string]string)
	if strings.TrimSpace(input.LeagueID) == "" {
		validation["league_id"] = "must be provided"
	}
	if strings.TrimSpace(input.TeamID) == "" {
		validation["team_id"] = "must be provided"
	}
	if len(validation) > 0 {
		failedValidationResponse(w, r, validation)
		return
	}

	championship, created, err := h.championshipService.StartSeason(r.Context(), currentUserID, input.LeagueID, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	if err := writeJSON(w, status, jsonResponse{"championship": championship, "created": created}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetOverview godoc
// @Summary Обзор сезона
// @Tags championships
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Success 200 {object} services.SeasonOverview
// @Failure 403 {object} map[string]string "Чужой чемпионат"
// @Failure 404 {object} map[string]string "Чемпионат не найден"
// @Security BearerAuth
// @Router /championships/{championshipID} [get]
func (h *ChampionshipHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	overview, err := h.championshipService.GetSeasonOverview(r.Context(), currentUserID, championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetSeason godoc
// @Summary Сбросить сезон
// @Tags championships
// @Description Удаляет матчи, таблицу и сам чемпионат; после этого сезон можно начать заново.
// @Param championshipID path int true "Championship ID"
// @Success 204 "Сезон удалён"
// @Failure 403 {object} map[string]string "Чужой чемпионат"
// @Failure 404 {object} map[string]string "Чемпионат не найден"
// @Security BearerAuth
// @Router /championships/{championshipID} [delete]
func (h *ChampionshipHandler) ResetSeason(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	if err := h.championshipService.ResetSeason(r.Context(), currentUserID, championshipID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListFixtures godoc
// @Summary Матчи чемпионата
// @Tags championships
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Param round query int false "Номер тура"
// @Param unplayed query bool false "Только несыгранные"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string "Неверный тур"
// @Security BearerAuth
// @Router /championships/{championshipID}/fixtures [get]
func (h *ChampionshipHandler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	round, err := queryInt(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	unplayed, err := queryBool(r, "unplayed")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.championshipService.ListFixtures(r.Context(), currentUserID, championshipID, services.FixtureQuery{
		Round:        round,
		UnplayedOnly: unplayed,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// NextFixture godoc
// @Summary Следующий матч команды пользователя
// @Tags championships
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Сезон окончен"
// @Security BearerAuth
// @Router /championships/{championshipID}/fixtures/next [get]
func (h *ChampionshipHandler) NextFixture(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	fixture, err := h.championshipService.GetNextFixture(r.Context(), currentUserID, championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixture": fixture}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandings godoc
// @Summary Турнирная таблица
// @Tags championships
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Param order query string false "position (по умолчанию) или team"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string "Неизвестный порядок"
// @Security BearerAuth
// @Router /championships/{championshipID}/standings [get]
func (h *ChampionshipHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	order := services.StandingsOrder(r.URL.Query().Get("order"))
	table, err := h.championshipService.GetStandings(r.Context(), currentUserID, championshipID, order)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetForm godoc
// @Summary Последние результаты команды
// @Tags championships
// @Description Самый свежий тур первым; недостающие позиции заполняются "-" в конце.
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Param team query string false "ID или название команды (по умолчанию команда пользователя)"
// @Param limit query int false "Количество результатов (по умолчанию 5)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Команда не найдена"
// @Security BearerAuth
// @Router /championships/{championshipID}/form [get]
func (h *ChampionshipHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	team := r.URL.Query().Get("team")
	form, err := h.championshipService.GetRecentForm(r.Context(), currentUserID, championshipID, team, n)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"team": team, "form": form}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetBudget godoc
// @Summary Бюджет клуба
// @Tags championships
// @Description Бюджет клуба пользователя; создаётся из справочника при первом обращении.
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Success 200 {object} models.TeamBudget
// @Failure 403 {object} map[string]string "Чужой чемпионат"
// @Failure 404 {object} map[string]string "Чемпионат не найден"
// @Security BearerAuth
// @Router /championships/{championshipID}/budget [get]
func (h *ChampionshipHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	budget, err := h.championshipService.GetTeamBudget(r.Context(), currentUserID, championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, budget, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Archive godoc
// @Summary Сохранить снимок сезона в хранилище
// @Tags championships
// @Produce json
// @Param championshipID path int true "Championship ID"
// @Success 201 {object} map[string]interface{}
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /championships/{championshipID}/archive [post]
func (h *ChampionshipHandler) Archive(w http.ResponseWriter, r *http.Request) {
	championshipID, currentUserID, ok := h.championshipRequest(w, r)
	if !ok {
		return
	}

	res, err := h.championshipService.ArchiveSeason(r.Context(), currentUserID, championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"archive": res}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResolveFixture godoc
// @Summary Записать результат матча и завершить тур
// @Tags fixtures
// @Description Записывает счёт матча пользователя, симулирует остальные матчи тура, пересчитывает таблицу и переходит к следующему туру.
// @Accept json
// @Produce json
// @Param fixtureID path int true "Fixture ID"
// @Param input body resolveRoundInput true "Счёт"
// @Success 200 {object} services.RoundResult
// @Failure 404 {object} map[string]string "Матч не найден"
// @Failure 409 {object} map[string]string "Матч уже сыгран или не из текущего тура"
// @Failure 422 {object} map[string]string "Неверный счёт"
// @Security BearerAuth
// @Router /fixtures/{fixtureID}/result [post]
func (h *ChampionshipHandler) ResolveFixture(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return
	}

	var input resolveRoundInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.HomeScore == nil || input.AwayScore == nil {
		failedValidationResponse(w, r, map[string]string{"score": "home_score and away_score are required"})
		return
	}

	result, err := h.championshipService.ResolveRound(r.Context(), currentUserID, fixtureID, *input.HomeScore, *input.AwayScore)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// championshipRequest extracts the championship id and the caller; on failure
// the error response is already written.
func (h *ChampionshipHandler) championshipRequest(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return 0, 0, false
	}

	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required")
		return 0, 0, false
	}
	return championshipID, currentUserID, true
}
