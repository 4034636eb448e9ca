package wellbeing

import (
	"net/http"
	"time"

	locationdomain "carelink-go/internal/domain/location"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

type recordLocationRequest struct {
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	AccuracyM  *float64   `json:"accuracy_m"`
	Address    *string    `json:"address"`
	RecordedAt *time.Time `json:"recorded_at"`
}

type LocationResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	AccuracyM  *float64 `json:"accuracy_m"`
	Address    *string  `json:"address"`
	RecordedAt string   `json:"recorded_at"`
}

type LocationsListResponse struct {
	Items []LocationResponse `json:"items"`
}

// ParseHistoryLimit reads the limit query parameter; zero selects the service default.
func ParseHistoryLimit(r *http.Request) (int, error) {
	return parseIntParam(r.URL.Query().Get("limit"), 0)
}

func (h *Handlers) RecordLocation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req recordLocationRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "latitude and longitude are required")
		return
	}

	input := locationdomain.RecordInput{
		UserID:    user.ID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		AccuracyM: req.AccuracyM,
		Address:   req.Address,
	}
	if req.RecordedAt != nil {
		input.RecordedAt = *req.RecordedAt
	}

	location, err := h.Locations.Record(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "locations.record", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, ToLocationResponse(location))
}

func (h *Handlers) LatestLocation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	location, err := h.Locations.Latest(r.Context(), user.ID)
	if err != nil {
		h.writeDomainError(w, "locations.latest", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ToLocationResponse(location))
}

func (h *Handlers) LocationHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	limit, err := ParseHistoryLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
		return
	}

	locations, err := h.Locations.History(r.Context(), user.ID, limit)
	if err != nil {
		h.writeDomainError(w, "locations.history", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, LocationsListResponse{Items: ToLocationResponses(locations)})
}

func ToLocationResponse(location *locationdomain.Location) LocationResponse {
	return LocationResponse{
		ID:         location.ID,
		UserID:     location.UserID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		AccuracyM:  location.AccuracyM,
		Address:    location.Address,
		RecordedAt: commonhandler.FormatTime(location.RecordedAt),
	}
}

func ToLocationResponses(locations []locationdomain.Location) []LocationResponse {
	items := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		items = append(items, ToLocationResponse(&locations[i]))
	}
	return items
}
