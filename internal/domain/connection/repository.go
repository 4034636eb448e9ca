package connection

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, connection *Connection) error
	// FindByPair returns nil, nil when no connection exists for the ordered pair.
	FindByPair(ctx context.Context, seniorID, familyMemberID string) (*Connection, error)
	GetByID(ctx context.Context, connectionID string) (*Connection, error)
	UpdateStatus(ctx context.Context, connectionID string, status Status, updatedAt time.Time) error
	// ReplacePermissions overwrites the stored record; it does not merge.
	ReplacePermissions(ctx context.Context, connectionID string, permissions Permissions, updatedAt time.Time) error
	Delete(ctx context.Context, connectionID string) (bool, error)
	ListAcceptedForSenior(ctx context.Context, seniorID string) ([]ProfiledConnection, error)
	ListAcceptedForFamilyMember(ctx context.Context, familyMemberID string) ([]ProfiledConnection, error)
	ListByParticipant(ctx context.Context, userID string, status *Status) ([]Connection, error)
}
