package location

import (
	"context"
	"errors"

	"gorm.io/gorm"

	locationdomain "carelink-go/internal/domain/location"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateLocation(ctx context.Context, location *locationdomain.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *PostgresRepository) LatestLocation(ctx context.Context, userID string) (*locationdomain.Location, error) {
	var location locationdomain.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		First(&location).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, locationdomain.ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *PostgresRepository) ListLocations(ctx context.Context, userID string, limit int) ([]locationdomain.Location, error) {
	var locations []locationdomain.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at desc").
		Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
