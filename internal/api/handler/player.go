package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nikrus/rpsduel-go/internal/api/request"
	"github.com/nikrus/rpsduel-go/internal/api/response"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
)

// PlayerHandler handles registration endpoints
type PlayerHandler struct {
	roster *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	if req.DisplayName == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	created, err := h.roster.Register(r.Context(), model.PlayerID(req.PlayerID), req.DisplayName, req.ChatID)
	if err != nil {
		WriteError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.JSON(w, status, response.RegisterResponse{
		PlayerID:    req.PlayerID,
		DisplayName: req.DisplayName,
		Created:     created,
	})
}
