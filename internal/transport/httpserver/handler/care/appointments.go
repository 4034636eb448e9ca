package care

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	appointmentdomain "carelink-go/internal/domain/appointment"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

type CreateAppointmentRequest struct {
	Title    string  `json:"title"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Location string  `json:"location"`
	Notes    *string `json:"notes"`
	Status   string  `json:"status"`
	Reminder bool    `json:"reminder"`
}

type updateAppointmentRequest struct {
	Title    *string `json:"title"`
	Type     *string `json:"type"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
	Reminder *bool   `json:"reminder"`
}

type AppointmentResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes"`
	Status    string  `json:"status"`
	Reminder  bool    `json:"reminder"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type AppointmentsListResponse struct {
	Items []AppointmentResponse `json:"items"`
}

// Input converts the request body. UserID and CreatedBy are left for the caller.
func (req CreateAppointmentRequest) Input() (appointmentdomain.CreateAppointmentInput, error) {
	date, err := commonhandler.ParseDateRequired(req.Date)
	if err != nil {
		return appointmentdomain.CreateAppointmentInput{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return appointmentdomain.CreateAppointmentInput{
		Title:    req.Title,
		Type:     appointmentdomain.Type(strings.ToLower(strings.TrimSpace(req.Type))),
		Date:     date,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
		Status:   appointmentdomain.Status(strings.ToLower(strings.TrimSpace(req.Status))),
		Reminder: req.Reminder,
	}, nil
}

// ParseAppointmentFilter reads status, from and to query parameters.
func ParseAppointmentFilter(r *http.Request) (appointmentdomain.ListFilter, error) {
	query := r.URL.Query()
	var filter appointmentdomain.ListFilter
	if value := strings.TrimSpace(query.Get("status")); value != "" {
		status := appointmentdomain.Status(strings.ToLower(value))
		filter.Status = &status
	}
	from, err := parseDateParam(query.Get("from"))
	if err != nil {
		return filter, fmt.Errorf("from must be YYYY-MM-DD")
	}
	to, err := parseDateParam(query.Get("to"))
	if err != nil {
		return filter, fmt.Errorf("to must be YYYY-MM-DD")
	}
	filter.From = from
	filter.To = to
	return filter, nil
}

func (h *Handlers) ListAppointments(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	filter, err := ParseAppointmentFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointments, err := h.Appointments.ListAppointments(r.Context(), user.ID, filter)
	if err != nil {
		h.writeDomainError(w, "appointments.list", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, AppointmentsListResponse{Items: ToAppointmentResponses(appointments)})
}

func (h *Handlers) GetAppointment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	appointment, err := h.Appointments.GetAppointment(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, "appointments.get", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ToAppointmentResponse(appointment))
}

func (h *Handlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req CreateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	input, err := req.Input()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	input.UserID = user.ID
	input.CreatedBy = user.ID

	appointment, err := h.Appointments.CreateAppointment(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "appointments.create", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, ToAppointmentResponse(appointment))
}

func (h *Handlers) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req updateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	input := appointmentdomain.UpdateAppointmentInput{
		ID:       chi.URLParam(r, "id"),
		UserID:   user.ID,
		Title:    req.Title,
		Time:     req.Time,
		Location: req.Location,
		Notes:    req.Notes,
		Reminder: req.Reminder,
	}
	if req.Type != nil {
		value := appointmentdomain.Type(strings.ToLower(strings.TrimSpace(*req.Type)))
		input.Type = &value
	}
	if req.Status != nil {
		value := appointmentdomain.Status(strings.ToLower(strings.TrimSpace(*req.Status)))
		input.Status = &value
	}
	if req.Date != nil {
		date, err := commonhandler.ParseDateRequired(*req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	appointment, err := h.Appointments.UpdateAppointment(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "appointments.update", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ToAppointmentResponse(appointment))
}

func (h *Handlers) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	if err := h.Appointments.DeleteAppointment(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "appointments.delete", err, user.ID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ToAppointmentResponse(appointment *appointmentdomain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        appointment.ID,
		UserID:    appointment.UserID,
		Title:     appointment.Title,
		Type:      string(appointment.Type),
		Date:      appointment.Date.Format(commonhandler.DateLayout),
		Time:      appointment.Time,
		Location:  appointment.Location,
		Notes:     appointment.Notes,
		Status:    string(appointment.Status),
		Reminder:  appointment.Reminder,
		CreatedBy: appointment.CreatedBy,
		CreatedAt: commonhandler.FormatTime(appointment.CreatedAt),
		UpdatedAt: commonhandler.FormatTime(appointment.UpdatedAt),
	}
}

func ToAppointmentResponses(appointments []appointmentdomain.Appointment) []AppointmentResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		items = append(items, ToAppointmentResponse(&appointments[i]))
	}
	return items
}
