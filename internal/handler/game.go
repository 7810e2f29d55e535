package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/narathia/narathia-go/internal/middleware"
	"github.com/narathia/narathia-go/internal/model"
	"github.com/narathia/narathia-go/internal/service"
)

// GameHandler handles HTTP requests for saved-game operations.
type GameHandler struct {
	service *service.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{service: svc}
}

// gameIDParam extracts and validates the game_id URL parameter. A value
// that is not a UUID cannot name any record, so it reports false and the
// caller responds 404 rather than revealing anything about the id space.
func gameIDParam(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "game_id")
	if uuid.Validate(id) != nil {
		return "", false
	}
	return id, true
}

// HandleSave handles POST /api/v1/games requests.
func (h *GameHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB

	var req model.SaveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Save(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameNameRequired),
			errors.Is(err, service.ErrGameStateRequired),
			errors.Is(err, service.ErrGameNameTaken),
			errors.Is(err, service.ErrOwnerNotFound):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleOverwrite handles PUT /api/v1/games/{game_id} requests.
func (h *GameHandler) HandleOverwrite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	gameID, ok := gameIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("game not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 10<<20) // 10MB

	var req model.OverwriteGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	err := h.service.Overwrite(r.Context(), userID, gameID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGameStateRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrGameNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleList handles GET /api/v1/games requests.
func (h *GameHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	games, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, games)
}

// HandleLoad handles GET /api/v1/games/{game_id} requests.
func (h *GameHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	gameID, ok := gameIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("game not found"))
		return
	}

	resp, err := h.service.Load(r.Context(), userID, gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/games/{game_id} requests.
func (h *GameHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	gameID, ok := gameIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("game not found"))
		return
	}

	err := h.service.Delete(r.Context(), userID, gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
