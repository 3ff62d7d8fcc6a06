package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikrus/rpsduel-go/internal/api/request"
	"github.com/nikrus/rpsduel-go/internal/api/response"
	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/notify"
	matchsvc "github.com/nikrus/rpsduel-go/internal/services/match"
	modesvc "github.com/nikrus/rpsduel-go/internal/services/mode"
)

// GameHandler handles voting, choice submission and the settlement trigger
type GameHandler struct {
	modeController  *modesvc.Controller
	matchController *matchsvc.Controller
	notifier        notify.Notifier
	clock           clock.Clock
	logger          *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	modeController *modesvc.Controller,
	matchController *matchsvc.Controller,
	notifier notify.Notifier,
	clk clock.Clock,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		modeController:  modeController,
		matchController: matchController,
		notifier:        notifier,
		clock:           clk,
		logger:          logger,
	}
}

// Vote handles POST /api/v1/votes
func (h *GameHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}
	date, err := resolveDate(h.clock, req.Date)
	if err != nil {
		WriteError(w, err)
		return
	}

	outcome, err := h.modeController.SubmitVote(r.Context(), model.PlayerID(req.PlayerID), date, mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VoteResponseFromOutcome(outcome))
}

// Choice handles POST /api/v1/games/{id}/choices
func (h *GameHandler) Choice(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.ChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	move, err := model.ParseMove(req.Move)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.matchController.SubmitChoice(r.Context(), gameID, model.PlayerID(req.PlayerID), move); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChoiceResponse{Status: "recorded"})
}

// Settle handles POST /api/v1/settle — the scheduled daily trigger.
// Notification delivery happens here, after the engine returns, so a failed
// send can never fail the settlement.
func (h *GameHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req request.SettleRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	date, err := resolveDate(h.clock, req.Date)
	if err != nil {
		WriteError(w, err)
		return
	}

	settlement, err := h.matchController.SettleDaily(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	notify.Dispatch(r.Context(), h.notifier, h.logger, settlement.Notifications)

	response.JSON(w, http.StatusOK, response.SettlementResponseFromModel(settlement))
}
