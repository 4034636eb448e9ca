package location

import "context"

type Repository interface {
	CreateLocation(ctx context.Context, location *Location) error
	// LatestLocation returns ErrLocationNotFound when the user has no pings.
	LatestLocation(ctx context.Context, userID string) (*Location, error)
	ListLocations(ctx context.Context, userID string, limit int) ([]Location, error)
}
