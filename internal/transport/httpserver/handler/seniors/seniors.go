package seniors

import (
	"net/http"

	connectiondomain "carelink-go/internal/domain/connection"
	"carelink-go/internal/transport/httpserver/handler/care"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/handler/wellbeing"
)

type permissionsResponse struct {
	SeniorID    string                       `json:"senior_id"`
	HasAccess   bool                         `json:"has_access"`
	Self        bool                         `json:"self"`
	Permissions connectiondomain.Permissions `json:"permissions"`
}

// Permissions reports the caller's effective access to the senior. It answers
// 200 with has_access=false rather than denying.
func (h *Handlers) Permissions(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	decision, err := h.Seniors.Permissions(r.Context(), requesterID, seniorID)
	if err != nil {
		h.writeGatedError(w, "seniors.permissions", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, permissionsResponse{
		SeniorID:    seniorID,
		HasAccess:   decision.HasAccess,
		Self:        decision.Self,
		Permissions: decision.Permissions,
	})
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	profile, err := h.Seniors.Profile(r.Context(), requesterID, seniorID)
	if err != nil {
		h.writeGatedError(w, "seniors.profile", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, commonhandler.ToPublicProfileResponse(profile.UserID, profile.FullName, profile.AvatarURL, profile.Role))
}

func (h *Handlers) HealthMetrics(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	filter, err := wellbeing.ParseMetricFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	metrics, total, err := h.Seniors.HealthMetrics(r.Context(), requesterID, seniorID, filter)
	if err != nil {
		h.writeGatedError(w, "seniors.health_metrics", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, wellbeing.MetricsListResponse{Items: wellbeing.ToMetricResponses(metrics), Total: total})
}

func (h *Handlers) Medications(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	activeOnly, err := care.ParseActiveOnly(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "active must be a boolean")
		return
	}

	medications, err := h.Seniors.Medications(r.Context(), requesterID, seniorID, activeOnly)
	if err != nil {
		h.writeGatedError(w, "seniors.medications", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, care.MedicationsListResponse{Items: care.ToMedicationResponses(medications)})
}

func (h *Handlers) Appointments(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	filter, err := care.ParseAppointmentFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointments, err := h.Seniors.Appointments(r.Context(), requesterID, seniorID, filter)
	if err != nil {
		h.writeGatedError(w, "seniors.appointments", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, care.AppointmentsListResponse{Items: care.ToAppointmentResponses(appointments)})
}

func (h *Handlers) LatestLocation(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	location, err := h.Seniors.LatestLocation(r.Context(), requesterID, seniorID)
	if err != nil {
		h.writeGatedError(w, "seniors.location", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, wellbeing.ToLocationResponse(location))
}

func (h *Handlers) LocationHistory(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	limit, err := wellbeing.ParseHistoryLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return
	}

	locations, err := h.Seniors.LocationHistory(r.Context(), requesterID, seniorID, limit)
	if err != nil {
		h.writeGatedError(w, "seniors.location_history", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, wellbeing.LocationsListResponse{Items: wellbeing.ToLocationResponses(locations)})
}

func (h *Handlers) Activities(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	filter, err := wellbeing.ParseActivityFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	activities, err := h.Seniors.Activities(r.Context(), requesterID, seniorID, filter)
	if err != nil {
		h.writeGatedError(w, "seniors.activities", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusOK, wellbeing.ActivitiesListResponse{Items: wellbeing.ToActivityResponses(activities)})
}

func (h *Handlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	var req care.CreateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	input, err := req.Input()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointment, err := h.Seniors.CreateAppointment(r.Context(), requesterID, seniorID, input)
	if err != nil {
		h.writeGatedError(w, "seniors.create_appointment", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusCreated, care.ToAppointmentResponse(appointment))
}

func (h *Handlers) CreateMedication(w http.ResponseWriter, r *http.Request) {
	requesterID, seniorID, ok := requestParties(w, r)
	if !ok {
		return
	}

	var req care.CreateMedicationRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	medication, err := h.Seniors.CreateMedication(r.Context(), requesterID, seniorID, req.Input())
	if err != nil {
		h.writeGatedError(w, "seniors.create_medication", err, requesterID, seniorID)
		return
	}

	writeJSON(w, http.StatusCreated, care.ToMedicationResponse(medication))
}
