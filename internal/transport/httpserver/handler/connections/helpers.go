package connections

import (
	"errors"
	"net/http"

	connectiondomain "carelink-go/internal/domain/connection"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
)

func writeError(w http.ResponseWriter, status int, code, message string) {
	commonhandler.WriteError(w, status, code, message)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return commonhandler.DecodeJSON(r, dst)
}

// writeConnectionError maps registry errors to responses. op is the log prefix.
func (h *Handlers) writeConnectionError(w http.ResponseWriter, op string, err error, userID string) {
	switch {
	case errors.Is(err, connectiondomain.ErrConnectionPending):
		h.log.BusinessError(op+": request pending", err, "user_id", userID)
		writeError(w, http.StatusConflict, "connection_pending", "connection request already pending")
	case errors.Is(err, connectiondomain.ErrConnectionExists):
		h.log.BusinessError(op+": connection exists", err, "user_id", userID)
		writeError(w, http.StatusConflict, "connection_exists", "connection already exists")
	case errors.Is(err, connectiondomain.ErrInvalidRequest):
		h.log.BusinessError(op+": invalid request", err, "user_id", userID)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, connectiondomain.ErrConnectionNotFound):
		h.log.BusinessError(op+": connection not found", err, "user_id", userID)
		writeError(w, http.StatusNotFound, "connection_not_found", "connection not found")
	case errors.Is(err, connectiondomain.ErrForbidden):
		h.log.BusinessError(op+": forbidden", err, "user_id", userID)
		writeError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "user_id", userID)
		commonhandler.WriteInternal(w)
	}
}
