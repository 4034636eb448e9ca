package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"carelink-go/internal/domain/ids"
)

// Service is the connection registry. Callers pass an already-verified
// principal id as actorID; the service only checks that the actor is a party
// to the connection it acts on.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create records a pending request from familyMemberID to seniorID. The new
// connection always carries DefaultPermissions.
func (s *Service) Create(ctx context.Context, seniorID, familyMemberID string, relationship Relationship) (*Connection, error) {
	seniorID = strings.TrimSpace(seniorID)
	familyMemberID = strings.TrimSpace(familyMemberID)
	if seniorID == "" || familyMemberID == "" {
		return nil, ErrMissingPrincipal
	}
	if !ids.Valid(seniorID) || !ids.Valid(familyMemberID) {
		return nil, ErrInvalidID
	}
	if seniorID == familyMemberID {
		return nil, ErrSelfConnection
	}
	if !relationship.Valid() {
		return nil, ErrInvalidRelationship
	}

	existing, err := s.repo.FindByPair(ctx, seniorID, familyMemberID)
	if err != nil {
		return nil, fmt.Errorf("find connection: %w", err)
	}
	if existing != nil {
		if existing.Status == StatusPending {
			return nil, ErrConnectionPending
		}
		return nil, ErrConnectionExists
	}

	now := time.Now().UTC()
	connection := Connection{
		ID:             uuid.NewString(),
		SeniorID:       seniorID,
		FamilyMemberID: familyMemberID,
		Relationship:   relationship,
		Status:         StatusPending,
		Permissions:    datatypes.NewJSONType(DefaultPermissions()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, &connection); err != nil {
		return nil, fmt.Errorf("create connection: %w", err)
	}

	return &connection, nil
}

// Exists looks up the ordered pair. It returns nil, nil when there is none,
// including when either id is not a UUID.
func (s *Service) Exists(ctx context.Context, seniorID, familyMemberID string) (*Connection, error) {
	if !ids.Valid(seniorID) || !ids.Valid(familyMemberID) {
		return nil, nil
	}
	return s.repo.FindByPair(ctx, seniorID, familyMemberID)
}

// GetByID returns ErrConnectionNotFound for unknown and malformed ids alike.
func (s *Service) GetByID(ctx context.Context, connectionID string) (*Connection, error) {
	if !ids.Valid(connectionID) {
		return nil, ErrConnectionNotFound
	}
	return s.repo.GetByID(ctx, connectionID)
}

// GetForParty returns the connection only when actorID is one of its parties.
func (s *Service) GetForParty(ctx context.Context, actorID, connectionID string) (*Connection, error) {
	connection, err := s.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !connection.IsParty(actorID) {
		return nil, ErrNotParty
	}
	return connection, nil
}

// UpdateStatus overwrites the status. Any known status may replace any other;
// transitions are not validated.
func (s *Service) UpdateStatus(ctx context.Context, actorID, connectionID string, status Status) (*Connection, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	connection, err := s.GetForParty(ctx, actorID, connectionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, connection.ID, status, now); err != nil {
		return nil, fmt.Errorf("update connection status: %w", err)
	}

	connection.Status = status
	connection.UpdatedAt = now
	return connection, nil
}

// UpdatePermissions replaces the permission record with exactly the supplied
// flags. Flags left nil are dropped from the stored record, not preserved.
func (s *Service) UpdatePermissions(ctx context.Context, actorID, connectionID string, permissions Permissions) (*Connection, error) {
	connection, err := s.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if actorID == "" || connection.SeniorID != actorID {
		return nil, ErrNotSenior
	}

	now := time.Now().UTC()
	if err := s.repo.ReplacePermissions(ctx, connection.ID, permissions, now); err != nil {
		return nil, fmt.Errorf("update connection permissions: %w", err)
	}

	connection.Permissions = datatypes.NewJSONType(permissions)
	connection.UpdatedAt = now
	return connection, nil
}

// Remove hard-deletes the connection. Either party may remove it.
func (s *Service) Remove(ctx context.Context, actorID, connectionID string) error {
	connection, err := s.GetForParty(ctx, actorID, connectionID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, connection.ID)
	if err != nil {
		return fmt.Errorf("delete connection: %w", err)
	}
	if !deleted {
		return ErrConnectionNotFound
	}
	return nil
}

// ListForSenior returns accepted connections where seniorID is the senior,
// each joined with the family member's public profile.
func (s *Service) ListForSenior(ctx context.Context, seniorID string) ([]ProfiledConnection, error) {
	return s.repo.ListAcceptedForSenior(ctx, seniorID)
}

// ListForFamilyMember returns accepted connections where familyMemberID is the
// family member, each joined with the senior's public profile.
func (s *Service) ListForFamilyMember(ctx context.Context, familyMemberID string) ([]ProfiledConnection, error) {
	return s.repo.ListAcceptedForFamilyMember(ctx, familyMemberID)
}

// ListRequests returns every connection userID is a party to, optionally
// filtered by status. Entries where userID is the senior are outgoing.
func (s *Service) ListRequests(ctx context.Context, userID string, status *Status) ([]Request, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}

	connections, err := s.repo.ListByParticipant(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	requests := make([]Request, 0, len(connections))
	for _, connection := range connections {
		direction := DirectionIncoming
		if connection.SeniorID == userID {
			direction = DirectionOutgoing
		}
		requests = append(requests, Request{Connection: connection, Direction: direction})
	}
	return requests, nil
}

// NotificationRecipients returns the family members of seniorID whose accepted
// connection has receiveNotifications enabled.
func (s *Service) NotificationRecipients(ctx context.Context, seniorID string) ([]string, error) {
	connections, err := s.repo.ListAcceptedForSenior(ctx, seniorID)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0, len(connections))
	for _, connection := range connections {
		if Enabled(connection.Permissions.Data().ReceiveNotifications) {
			recipients = append(recipients, connection.FamilyMemberID)
		}
	}
	return recipients, nil
}
