package wellbeing

import (
	"fmt"
	"net/http"
	"time"

	activitydomain "carelink-go/internal/domain/activity"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

type recordActivityRequest struct {
	ActivityType    string     `json:"activity_type"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	RecordedAt      *time.Time `json:"recorded_at"`
}

type ActivityResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	ActivityType    string `json:"activity_type"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	RecordedAt      string `json:"recorded_at"`
}

type ActivitiesListResponse struct {
	Items []ActivityResponse `json:"items"`
}

// ParseActivityFilter reads activity_type, from, to and limit.
func ParseActivityFilter(r *http.Request) (activitydomain.ListFilter, error) {
	query := r.URL.Query()
	var filter activitydomain.ListFilter
	if value := query.Get("activity_type"); value != "" {
		filter.ActivityType = &value
	}

	var err error
	if filter.From, err = parseTimeParam(query.Get("from")); err != nil {
		return filter, fmt.Errorf("from must be RFC3339 or YYYY-MM-DD")
	}
	if filter.To, err = parseTimeParam(query.Get("to")); err != nil {
		return filter, fmt.Errorf("to must be RFC3339 or YYYY-MM-DD")
	}
	if filter.Limit, err = parseIntParam(query.Get("limit"), 0); err != nil {
		return filter, fmt.Errorf("limit must be a non-negative integer")
	}
	return filter, nil
}

func (h *Handlers) ListActivities(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	filter, err := ParseActivityFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	activities, err := h.Activities.List(r.Context(), user.ID, filter)
	if err != nil {
		h.writeDomainError(w, "activities.list", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ActivitiesListResponse{Items: ToActivityResponses(activities)})
}

func (h *Handlers) RecordActivity(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req recordActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	input := activitydomain.RecordInput{
		UserID:          user.ID,
		ActivityType:    req.ActivityType,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}
	if req.RecordedAt != nil {
		input.RecordedAt = *req.RecordedAt
	}

	activity, err := h.Activities.Record(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "activities.record", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, ToActivityResponse(activity))
}

func ToActivityResponse(activity *activitydomain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:              activity.ID,
		UserID:          activity.UserID,
		ActivityType:    activity.ActivityType,
		Description:     activity.Description,
		DurationMinutes: activity.DurationMinutes,
		RecordedAt:      commonhandler.FormatTime(activity.RecordedAt),
	}
}

func ToActivityResponses(activities []activitydomain.Activity) []ActivityResponse {
	items := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, ToActivityResponse(&activities[i]))
	}
	return items
}
