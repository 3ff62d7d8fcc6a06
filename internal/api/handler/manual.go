package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nikrus/rpsduel-go/internal/api/request"
	"github.com/nikrus/rpsduel-go/internal/api/response"
	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
	"github.com/nikrus/rpsduel-go/internal/notify"
	"github.com/nikrus/rpsduel-go/internal/services/manual"
)

// ManualHandler drives the live manual-entry session
type ManualHandler struct {
	session  *manual.Session
	notifier notify.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

// NewManualHandler creates a new manual entry handler
func NewManualHandler(session *manual.Session, notifier notify.Notifier, clk clock.Clock, logger *slog.Logger) *ManualHandler {
	return &ManualHandler{
		session:  session,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Start handles POST /api/v1/manual/start
func (h *ManualHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.ManualStartRequest
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

	round, err := h.session.StartRound(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ManualStartResponse{
		Round: round,
		State: string(h.session.State()),
	})
}

// SideA handles POST /api/v1/manual/side-a
func (h *ManualHandler) SideA(w http.ResponseWriter, r *http.Request) {
	move, ok := h.decodeMove(w, r)
	if !ok {
		return
	}

	if err := h.session.RecordSideA(r.Context(), move); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ManualMoveResponse{
		State: string(h.session.State()),
	})
}

// SideB handles POST /api/v1/manual/side-b — recording the second move
// settles the round synchronously
func (h *ManualHandler) SideB(w http.ResponseWriter, r *http.Request) {
	move, ok := h.decodeMove(w, r)
	if !ok {
		return
	}

	settlement, err := h.session.RecordSideB(r.Context(), move)
	if err != nil {
		WriteError(w, err)
		return
	}

	notify.Dispatch(r.Context(), h.notifier, h.logger, settlement.Notifications)

	settled := response.SettlementResponseFromModel(settlement)
	response.JSON(w, http.StatusOK, response.ManualMoveResponse{
		State:      string(h.session.State()),
		Settlement: &settled,
	})
}

func (h *ManualHandler) decodeMove(w http.ResponseWriter, r *http.Request) (model.Move, bool) {
	var req request.ManualMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return "", false
	}

	move, err := model.ParseMove(req.Move)
	if err != nil {
		WriteError(w, err)
		return "", false
	}
	return move, true
}
