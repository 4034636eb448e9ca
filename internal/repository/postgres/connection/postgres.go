package connection

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	connectiondomain "carelink-go/internal/domain/connection"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, connection *connectiondomain.Connection) error {
	return r.db.WithContext(ctx).Create(connection).Error
}

func (r *PostgresRepository) FindByPair(ctx context.Context, seniorID, familyMemberID string) (*connectiondomain.Connection, error) {
	var connection connectiondomain.Connection
	err := r.db.WithContext(ctx).
		Where("senior_id = ? AND family_member_id = ?", seniorID, familyMemberID).
		Order("created_at asc").
		First(&connection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, connectionID string) (*connectiondomain.Connection, error) {
	var connection connectiondomain.Connection
	if err := r.db.WithContext(ctx).Where("id = ?", connectionID).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, connectiondomain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &connection, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, connectionID string, status connectiondomain.Status, updatedAt time.Time) error {
	return r.update(ctx, connectionID, map[string]interface{}{
		"status":     status,
		"updated_at": updatedAt,
	})
}

func (r *PostgresRepository) ReplacePermissions(ctx context.Context, connectionID string, permissions connectiondomain.Permissions, updatedAt time.Time) error {
	return r.update(ctx, connectionID, map[string]interface{}{
		"permissions": datatypes.NewJSONType(permissions),
		"updated_at":  updatedAt,
	})
}

func (r *PostgresRepository) update(ctx context.Context, connectionID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&connectiondomain.Connection{}).
		Where("id = ?", connectionID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return connectiondomain.ErrConnectionNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, connectionID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&connectiondomain.Connection{}, "id = ?", connectionID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) ListAcceptedForSenior(ctx context.Context, seniorID string) ([]connectiondomain.ProfiledConnection, error) {
	return r.listAccepted(ctx, "family_connections.senior_id", "family_connections.family_member_id", seniorID)
}

func (r *PostgresRepository) ListAcceptedForFamilyMember(ctx context.Context, familyMemberID string) ([]connectiondomain.ProfiledConnection, error) {
	return r.listAccepted(ctx, "family_connections.family_member_id", "family_connections.senior_id", familyMemberID)
}

// listAccepted joins each accepted connection owned through ownerColumn with
// the profile of the party in counterpartColumn.
func (r *PostgresRepository) listAccepted(ctx context.Context, ownerColumn, counterpartColumn, userID string) ([]connectiondomain.ProfiledConnection, error) {
	type connectionRow struct {
		connectiondomain.Connection
		CounterpartID        string  `gorm:"column:counterpart_id"`
		CounterpartFullName  *string `gorm:"column:counterpart_full_name"`
		CounterpartAvatarURL *string `gorm:"column:counterpart_avatar_url"`
		CounterpartRole      *string `gorm:"column:counterpart_role"`
	}

	var rows []connectionRow
	if err := r.db.WithContext(ctx).
		Table("family_connections").
		Select("family_connections.*, "+
			counterpartColumn+" AS counterpart_id, "+
			"profiles.full_name AS counterpart_full_name, "+
			"profiles.avatar_url AS counterpart_avatar_url, "+
			"profiles.role AS counterpart_role").
		Joins("left join profiles on profiles.user_id = "+counterpartColumn).
		Where(ownerColumn+" = ? AND family_connections.status = ?", userID, connectiondomain.StatusAccepted).
		Order("family_connections.created_at asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	connections := make([]connectiondomain.ProfiledConnection, 0, len(rows))
	for _, row := range rows {
		counterpart := connectiondomain.PublicProfile{
			UserID:    row.CounterpartID,
			FullName:  row.CounterpartFullName,
			AvatarURL: row.CounterpartAvatarURL,
		}
		if row.CounterpartRole != nil {
			counterpart.Role = *row.CounterpartRole
		}
		connections = append(connections, connectiondomain.ProfiledConnection{
			Connection:  row.Connection,
			Counterpart: counterpart,
		})
	}
	return connections, nil
}

func (r *PostgresRepository) ListByParticipant(ctx context.Context, userID string, status *connectiondomain.Status) ([]connectiondomain.Connection, error) {
	query := r.db.WithContext(ctx).
		Where("senior_id = ? OR family_member_id = ?", userID, userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var connections []connectiondomain.Connection
	if err := query.Order("created_at desc").Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}
