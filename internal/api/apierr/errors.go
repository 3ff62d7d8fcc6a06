package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikrus/rpsduel-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidMove       = "INVALID_MOVE"
	CodeInvalidMode       = "INVALID_MODE"
	CodeInvalidDate       = "INVALID_DATE"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeWrongMode         = "WRONG_MODE"
	CodeGameFinished      = "GAME_FINISHED"
	CodeNoRoundInProgress = "NO_ROUND_IN_PROGRESS"
	CodeRoundInProgress   = "ROUND_IN_PROGRESS"
	CodeNotSideTurn       = "NOT_SIDE_TURN"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Move must be rock, paper or scissors"}}
	case errors.Is(err, model.ErrInvalidMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMode, "Mode must be manual or auto"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be formatted YYYY-MM-DD"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrWrongMode):
		return &httpError{http.StatusConflict, APIError{CodeWrongMode, "Game is not in the required mode"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already finished"}}
	case errors.Is(err, model.ErrNoRoundInProgress):
		return &httpError{http.StatusConflict, APIError{CodeNoRoundInProgress, "No manual round in progress"}}
	case errors.Is(err, model.ErrRoundInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRoundInProgress, "A manual round is already in progress"}}
	case errors.Is(err, model.ErrNotSideTurn):
		return &httpError{http.StatusConflict, APIError{CodeNotSideTurn, "Not this side's turn"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
