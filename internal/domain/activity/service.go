package activity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, input RecordInput) (*Activity, error) {
	activityType := strings.ToLower(strings.TrimSpace(input.ActivityType))
	if activityType == "" {
		return nil, ErrActivityTypeRequired
	}
	if input.DurationMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	activity := Activity{
		ID:              uuid.NewString(),
		UserID:          input.UserID,
		ActivityType:    activityType,
		Description:     strings.TrimSpace(input.Description),
		DurationMinutes: input.DurationMinutes,
		RecordedAt:      recordedAt.UTC(),
	}
	if err := s.repo.CreateActivity(ctx, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Activity, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, ErrInvalidRange
	}
	if filter.ActivityType != nil {
		normalized := strings.ToLower(strings.TrimSpace(*filter.ActivityType))
		if normalized == "" {
			filter.ActivityType = nil
		} else {
			filter.ActivityType = &normalized
		}
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultListLimit
	case filter.Limit > maxListLimit:
		filter.Limit = maxListLimit
	}
	return s.repo.ListActivities(ctx, userID, filter)
}
