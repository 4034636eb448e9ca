package connections

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	connectiondomain "carelink-go/internal/domain/connection"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

type createConnectionRequest struct {
	SeniorID     string `json:"senior_id"`
	Relationship string `json:"relationship"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateConnection sends a request from the caller, as family member, to a senior.
func (h *Handlers) CreateConnection(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req createConnectionRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	relationship := connectiondomain.Relationship(strings.ToLower(strings.TrimSpace(req.Relationship)))

	connection, err := h.Connections.Create(r.Context(), req.SeniorID, user.ID, relationship)
	if err != nil {
		h.writeConnectionError(w, "connections.create", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, toConnectionResponse(connection))
}

func (h *Handlers) ListRequests(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var status *connectiondomain.Status
	if value := strings.TrimSpace(r.URL.Query().Get("status")); value != "" {
		parsed := connectiondomain.Status(strings.ToLower(value))
		status = &parsed
	}

	requests, err := h.Connections.ListRequests(r.Context(), user.ID, status)
	if err != nil {
		h.writeConnectionError(w, "connections.list_requests", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[requestResponse]{Items: toRequestResponses(requests)})
}

// ListSeniors returns the seniors the caller is connected to as a family member.
func (h *Handlers) ListSeniors(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	connections, err := h.Connections.ListForFamilyMember(r.Context(), user.ID)
	if err != nil {
		h.writeConnectionError(w, "connections.list_seniors", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[profiledConnectionResponse]{Items: toProfiledResponses(connections)})
}

// ListFamily returns the family members connected to the caller as a senior.
func (h *Handlers) ListFamily(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	connections, err := h.Connections.ListForSenior(r.Context(), user.ID)
	if err != nil {
		h.writeConnectionError(w, "connections.list_family", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[profiledConnectionResponse]{Items: toProfiledResponses(connections)})
}

// ListNotificationRecipients returns the family member ids that should be
// notified about the calling senior.
func (h *Handlers) ListNotificationRecipients(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	recipients, err := h.Connections.NotificationRecipients(r.Context(), user.ID)
	if err != nil {
		h.writeConnectionError(w, "connections.notification_recipients", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[string]{Items: recipients})
}

func (h *Handlers) GetConnection(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	connection, err := h.Connections.GetForParty(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeConnectionError(w, "connections.get", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, toConnectionResponse(connection))
}

func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	status := connectiondomain.Status(strings.ToLower(strings.TrimSpace(req.Status)))

	connection, err := h.Connections.UpdateStatus(r.Context(), user.ID, chi.URLParam(r, "id"), status)
	if err != nil {
		h.writeConnectionError(w, "connections.update_status", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, toConnectionResponse(connection))
}

// UpdatePermissions replaces the stored flags with the request body. Flags
// omitted from the body are cleared.
func (h *Handlers) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req connectiondomain.Permissions
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	connection, err := h.Connections.UpdatePermissions(r.Context(), user.ID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeConnectionError(w, "connections.update_permissions", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, toConnectionResponse(connection))
}

func (h *Handlers) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	if err := h.Connections.Remove(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.writeConnectionError(w, "connections.delete", err, user.ID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
