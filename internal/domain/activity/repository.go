package activity

import "context"

type Repository interface {
	CreateActivity(ctx context.Context, activity *Activity) error
	ListActivities(ctx context.Context, userID string, filter ListFilter) ([]Activity, error)
}
