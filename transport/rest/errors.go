package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/hasami-shogi-backend/internal/apperror"
	"github.com/rocketscienceinc/hasami-shogi-backend/internal/hasami"
)

var errBadRequest = errors.New("malformed request body")

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNotInGame):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrGameFull),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrAlreadyInGame),
		errors.Is(err, hasami.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, errPlayerIDRequired),
		errors.Is(err, hasami.ErrInvalidLocation),
		errors.Is(err, hasami.ErrNotYourPiece),
		errors.Is(err, hasami.ErrIllegalDirection),
		errors.Is(err, hasami.ErrPathBlocked):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}
