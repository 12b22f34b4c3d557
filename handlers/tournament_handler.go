package handlers

import (
	"net/http"

	"github.com/Dosada05/tennis-cup/services"
	"github.com/go-chi/chi/v5"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
	}
}

// CreateHandler godoc
// @Summary Create a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param input body services.CreateTournamentInput true "Tournament key and capacity"
// @Success 201 {object} services.TournamentView
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 409 {object} map[string]string "Key already taken"
// @Failure 422 {object} map[string]string "Invalid key or capacity"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /tournaments [post]
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournamentService.CreateTournament(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetHandler godoc
// @Summary Tournament state with standings, phase and final ranking
// @Tags tournaments
// @Produce json
// @Param key path string true "Tournament key"
// @Success 200 {object} services.TournamentView
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /tournaments/{key} [get]
func (h *TournamentHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournamentService.GetTournament(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterPlayerHandler godoc
// @Summary Register a player by display name
// @Tags tournaments
// @Accept json
// @Produce json
// @Param key path string true "Tournament key"
// @Param input body services.RegisterPlayerInput true "Player"
// @Success 201 {object} services.TournamentView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Name already registered"
// @Failure 422 {object} map[string]string "Registration closed or full"
// @Security BearerAuth
// @Router /tournaments/{key}/players [post]
func (h *TournamentHandler) RegisterPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournamentService.RegisterPlayer(r.Context(), chi.URLParam(r, "key"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartHandler godoc
// @Summary Draw the groups and generate the group fixtures
// @Tags tournaments
// @Produce json
// @Param key path string true "Tournament key"
// @Success 200 {object} services.TournamentView
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string "Too few players, odd count or already started"
// @Security BearerAuth
// @Router /tournaments/{key}/start [post]
func (h *TournamentHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.tournamentService.StartTournament(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitResultHandler godoc
// @Summary Record the score of a group or playoff match
// @Tags matches
// @Accept json
// @Produce json
// @Param key path string true "Tournament key"
// @Param matchID path string true "Match ID"
// @Param input body services.SubmitResultInput true "Games won by each player"
// @Success 200 {object} services.TournamentView
// @Failure 404 {object} map[string]string "Tournament or match not found"
// @Failure 422 {object} map[string]string "Score does not satisfy the win condition"
// @Failure 503 {object} map[string]string "Store unavailable, result not recorded"
// @Security BearerAuth
// @Router /tournaments/{key}/matches/{matchID}/score [put]
func (h *TournamentHandler) SubmitResultHandler(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.tournamentService.SubmitResult(r.Context(), chi.URLParam(r, "key"), chi.URLParam(r, "matchID"), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler godoc
// @Summary Delete the tournament and everything in it
// @Tags tournaments
// @Param key path string true "Tournament key"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /tournaments/{key} [delete]
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.ResetTournament(r.Context(), chi.URLParam(r, "key")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
