package seniors

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carelink-go/internal/domain/access"
	userdomain "carelink-go/internal/domain/user"
	"carelink-go/internal/transport/httpserver/handler/care"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/handler/wellbeing"
	"carelink-go/internal/transport/httpserver/middleware"
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

// requestParties returns the authenticated requester and the senior_id path value.
func requestParties(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return "", "", false
	}
	seniorID := chi.URLParam(r, "senior_id")
	if seniorID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "senior_id is required")
		return "", "", false
	}
	return user.ID, seniorID, true
}

func (h *Handlers) writeGatedError(w http.ResponseWriter, op string, err error, requesterID, seniorID string) {
	if errors.Is(err, access.ErrAccessDenied) {
		h.log.BusinessError(op+": access denied", err, "user_id", requesterID, "senior_id", seniorID)
		commonhandler.WriteAccessDenied(w)
		return
	}
	if errors.Is(err, userdomain.ErrProfileNotFound) {
		h.log.BusinessError(op+": profile not found", err, "user_id", requesterID, "senior_id", seniorID)
		writeError(w, http.StatusNotFound, "profile_not_found", "profile not found")
		return
	}
	for _, classify := range []func(error) (int, string, string, bool){care.Classify, wellbeing.Classify} {
		if status, code, message, ok := classify(err); ok {
			h.log.BusinessError(op+": "+message, err, "user_id", requesterID, "senior_id", seniorID)
			writeError(w, status, code, message)
			return
		}
	}
	h.log.InternalError(op+": failed", err, "user_id", requesterID, "senior_id", seniorID)
	commonhandler.WriteInternal(w)
}
