package wellbeing

import (
	"errors"
	"net/http"
	"time"

	activitydomain "carelink-go/internal/domain/activity"
	healthdomain "carelink-go/internal/domain/health"
	locationdomain "carelink-go/internal/domain/location"
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

func parseTimeParam(value string) (*time.Time, error) {
	return commonhandler.ParseTimeParam(value)
}

func parseIntParam(value string, fallback int) (int, error) {
	return commonhandler.ParseIntParam(value, fallback)
}

// Classify maps health, location and activity errors to a response. ok is
// false for errors it does not recognize.
func Classify(err error) (status int, code, message string, ok bool) {
	switch {
	case errors.Is(err, healthdomain.ErrMetricNotFound):
		return http.StatusNotFound, "health_metric_not_found", "health metric not found", true
	case errors.Is(err, locationdomain.ErrLocationNotFound):
		return http.StatusNotFound, "location_not_found", "location not found", true
	case errors.Is(err, healthdomain.ErrInvalidMetricType),
		errors.Is(err, healthdomain.ErrInvalidValue),
		errors.Is(err, healthdomain.ErrImmutableField),
		errors.Is(err, healthdomain.ErrRecordedAtRequired),
		errors.Is(err, locationdomain.ErrInvalidCoordinate),
		errors.Is(err, locationdomain.ErrInvalidAccuracy),
		errors.Is(err, activitydomain.ErrActivityTypeRequired),
		errors.Is(err, activitydomain.ErrInvalidDuration),
		errors.Is(err, activitydomain.ErrInvalidRange):
		return http.StatusBadRequest, "invalid_request", err.Error(), true
	}
	return 0, "", "", false
}

func (h *Handlers) writeDomainError(w http.ResponseWriter, op string, err error, userID string) {
	if status, code, message, ok := Classify(err); ok {
		h.log.BusinessError(op+": "+message, err, "user_id", userID)
		writeError(w, status, code, message)
		return
	}
	h.log.InternalError(op+": failed", err, "user_id", userID)
	commonhandler.WriteInternal(w)
}
