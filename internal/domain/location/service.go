package location

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, input RecordInput) (*Location, error) {
	if !validCoordinate(input.Latitude, 90) || !validCoordinate(input.Longitude, 180) {
		return nil, ErrInvalidCoordinate
	}
	if input.AccuracyM != nil && *input.AccuracyM < 0 {
		return nil, ErrInvalidAccuracy
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	location := Location{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		AccuracyM:  input.AccuracyM,
		Address:    input.Address,
		RecordedAt: recordedAt.UTC(),
	}
	if err := s.repo.CreateLocation(ctx, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *Service) Latest(ctx context.Context, userID string) (*Location, error) {
	return s.repo.LatestLocation(ctx, userID)
}

// History returns the newest pings first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]Location, error) {
	return s.repo.ListLocations(ctx, userID, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

func validCoordinate(value, bound float64) bool {
	if math.IsNaN(value) {
		return false
	}
	return value >= -bound && value <= bound
}
