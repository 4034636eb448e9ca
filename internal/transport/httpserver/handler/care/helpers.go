package care

import (
	"errors"
	"net/http"
	"time"

	appointmentdomain "carelink-go/internal/domain/appointment"
	medicationdomain "carelink-go/internal/domain/medication"
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

func parseDateParam(value string) (*time.Time, error) {
	return commonhandler.ParseDateParam(value)
}

// Classify maps appointment and medication errors to a response. ok is false
// for errors it does not recognize.
func Classify(err error) (status int, code, message string, ok bool) {
	switch {
	case errors.Is(err, appointmentdomain.ErrAppointmentNotFound):
		return http.StatusNotFound, "appointment_not_found", "appointment not found", true
	case errors.Is(err, medicationdomain.ErrMedicationNotFound):
		return http.StatusNotFound, "medication_not_found", "medication not found", true
	case errors.Is(err, appointmentdomain.ErrTitleRequired),
		errors.Is(err, appointmentdomain.ErrInvalidType),
		errors.Is(err, appointmentdomain.ErrInvalidStatus),
		errors.Is(err, appointmentdomain.ErrInvalidTime),
		errors.Is(err, appointmentdomain.ErrDateRequired),
		errors.Is(err, medicationdomain.ErrNameRequired):
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
