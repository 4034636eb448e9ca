package connection

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

const (
	seniorA    = "5e000000-0000-4000-8000-000000000001"
	seniorB    = "5e000000-0000-4000-8000-000000000002"
	seniorC    = "5e000000-0000-4000-8000-000000000003"
	familyA    = "fa000000-0000-4000-8000-000000000001"
	familyB    = "fa000000-0000-4000-8000-000000000002"
	familyC    = "fa000000-0000-4000-8000-000000000003"
	userA      = "a0000000-0000-4000-8000-000000000001"
	strangerID = "dd000000-0000-4000-8000-000000000001"
	connA      = "c0000000-0000-4000-8000-000000000001"
	connB      = "c0000000-0000-4000-8000-000000000002"
	connC      = "c0000000-0000-4000-8000-000000000003"
)

type fakeConnectionRepo struct {
	connections map[string]*Connection
	profiles    map[string]PublicProfile
	failWith    error
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{
		connections: make(map[string]*Connection),
		profiles:    make(map[string]PublicProfile),
	}
}

func (r *fakeConnectionRepo) Create(ctx context.Context, connection *Connection) error {
	if r.failWith != nil {
		return r.failWith
	}
	stored := *connection
	r.connections[connection.ID] = &stored
	return nil
}

func (r *fakeConnectionRepo) FindByPair(ctx context.Context, seniorID, familyMemberID string) (*Connection, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, connection := range r.connections {
		if connection.SeniorID == seniorID && connection.FamilyMemberID == familyMemberID {
			found := *connection
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeConnectionRepo) GetByID(ctx context.Context, connectionID string) (*Connection, error) {
	connection, ok := r.connections[connectionID]
	if !ok {
		return nil, ErrConnectionNotFound
	}
	found := *connection
	return &found, nil
}

func (r *fakeConnectionRepo) UpdateStatus(ctx context.Context, connectionID string, status Status, updatedAt time.Time) error {
	connection, ok := r.connections[connectionID]
	if !ok {
		return ErrConnectionNotFound
	}
	connection.Status = status
	connection.UpdatedAt = updatedAt
	return nil
}

func (r *fakeConnectionRepo) ReplacePermissions(ctx context.Context, connectionID string, permissions Permissions, updatedAt time.Time) error {
	connection, ok := r.connections[connectionID]
	if !ok {
		return ErrConnectionNotFound
	}
	connection.Permissions = datatypes.NewJSONType(permissions)
	connection.UpdatedAt = updatedAt
	return nil
}

func (r *fakeConnectionRepo) Delete(ctx context.Context, connectionID string) (bool, error) {
	_, ok := r.connections[connectionID]
	delete(r.connections, connectionID)
	return ok, nil
}

func (r *fakeConnectionRepo) ListAcceptedForSenior(ctx context.Context, seniorID string) ([]ProfiledConnection, error) {
	return r.listAccepted(func(c *Connection) (bool, string) { return c.SeniorID == seniorID, c.FamilyMemberID }), nil
}

func (r *fakeConnectionRepo) ListAcceptedForFamilyMember(ctx context.Context, familyMemberID string) ([]ProfiledConnection, error) {
	return r.listAccepted(func(c *Connection) (bool, string) { return c.FamilyMemberID == familyMemberID, c.SeniorID }), nil
}

func (r *fakeConnectionRepo) listAccepted(match func(*Connection) (bool, string)) []ProfiledConnection {
	result := make([]ProfiledConnection, 0)
	for _, connection := range r.connections {
		ok, counterpart := match(connection)
		if !ok || connection.Status != StatusAccepted {
			continue
		}
		result = append(result, ProfiledConnection{Connection: *connection, Counterpart: r.profiles[counterpart]})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *fakeConnectionRepo) ListByParticipant(ctx context.Context, userID string, status *Status) ([]Connection, error) {
	result := make([]Connection, 0)
	for _, connection := range r.connections {
		if !connection.IsParty(userID) {
			continue
		}
		if status != nil && connection.Status != *status {
			continue
		}
		result = append(result, *connection)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeConnectionRepo) seed(id, seniorID, familyMemberID string, status Status) *Connection {
	connection := &Connection{
		ID:             id,
		SeniorID:       seniorID,
		FamilyMemberID: familyMemberID,
		Relationship:   RelationshipChild,
		Status:         status,
		Permissions:    datatypes.NewJSONType(DefaultPermissions()),
	}
	r.connections[id] = connection
	return connection
}

func TestCreatePendingWithDefaultPermissions(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), seniorA, familyA, RelationshipChild)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, RelationshipChild, created.Relationship)
	assert.Equal(t, DefaultPermissions(), created.Permissions.Data())
	assert.Contains(t, repo.connections, created.ID)
}

func TestDefaultPermissionsShape(t *testing.T) {
	p := DefaultPermissions()
	for _, value := range []*bool{p.ViewHealth, p.ViewMedications, p.ViewAppointments, p.ViewLocation, p.ReceiveNotifications} {
		assert.True(t, Enabled(value))
	}
	assert.False(t, Enabled(p.ManageMedications))
	assert.False(t, Enabled(p.ManageAppointments))
	require.NotNil(t, p.ManageMedications)
}

func TestCreateRejectsSelfConnection(t *testing.T) {
	svc := NewService(newFakeConnectionRepo())

	_, err := svc.Create(context.Background(), userA, userA, RelationshipOther)
	assert.ErrorIs(t, err, ErrSelfConnection)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCreateRejectsUnknownRelationship(t *testing.T) {
	svc := NewService(newFakeConnectionRepo())

	_, err := svc.Create(context.Background(), seniorA, familyA, Relationship("neighbour"))
	assert.ErrorIs(t, err, ErrInvalidRelationship)
}

func TestCreateTwiceConflicts(t *testing.T) {
	repo := newFakeConnectionRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, seniorA, familyA, RelationshipChild)
	require.NoError(t, err)

	_, err = svc.Create(ctx, seniorA, familyA, RelationshipChild)
	assert.ErrorIs(t, err, ErrConnectionPending)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Len(t, repo.connections, 1)
}

func TestCreateAfterAcceptedConflictsWithExists(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), seniorA, familyA, RelationshipSpouse)
	assert.ErrorIs(t, err, ErrConnectionExists)
	assert.EqualError(t, err, "conflict: connection already exists")
}

func TestCreateReversedPairIsDistinct(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), familyA, seniorA, RelationshipChild)
	require.NoError(t, err)
}

func TestCreatePropagatesStoreFailure(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), seniorA, familyA, RelationshipChild)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.failWith)
}

func TestExists(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusPending)
	svc := NewService(repo)
	ctx := context.Background()

	found, err := svc.Exists(ctx, seniorA, familyA)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, connA, found.ID)

	missing, err := svc.Exists(ctx, familyA, seniorA)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(newFakeConnectionRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
}

func TestUpdateStatusByEitherParty(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusPending)
	svc := NewService(repo)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, seniorA, connA, StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, updated.Status)

	// No transition rules: blocked may go straight back to pending.
	_, err = svc.UpdateStatus(ctx, familyA, connA, StatusBlocked)
	require.NoError(t, err)
	updated, err = svc.UpdateStatus(ctx, familyA, connA, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, repo.connections[connA].Status)
	assert.Equal(t, StatusPending, updated.Status)
}

func TestUpdateStatusRejectsOutsider(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusPending)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), strangerID, connA, StatusAccepted)
	assert.ErrorIs(t, err, ErrNotParty)
	assert.Equal(t, StatusPending, repo.connections[connA].Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusPending)
	svc := NewService(repo)

	_, err := svc.UpdateStatus(context.Background(), seniorA, connA, Status("removed"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdatePermissionsOnlySenior(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	svc := NewService(repo)

	on := true
	_, err := svc.UpdatePermissions(context.Background(), familyA, connA, Permissions{ManageAppointments: &on})
	assert.ErrorIs(t, err, ErrNotSenior)
	assert.Equal(t, DefaultPermissions(), repo.connections[connA].Permissions.Data())
}

// Partial updates replace the record: unlisted flags are dropped.
func TestUpdatePermissionsReplacesRecord(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	svc := NewService(repo)

	off := false
	updated, err := svc.UpdatePermissions(context.Background(), seniorA, connA, Permissions{ViewHealth: &off})
	require.NoError(t, err)

	stored := repo.connections[connA].Permissions.Data()
	require.NotNil(t, stored.ViewHealth)
	assert.False(t, *stored.ViewHealth)
	assert.Nil(t, stored.ViewMedications)
	assert.Nil(t, stored.ViewAppointments)
	assert.Nil(t, stored.ViewLocation)
	assert.Nil(t, stored.ReceiveNotifications)
	assert.Nil(t, stored.ManageMedications)
	assert.Nil(t, stored.ManageAppointments)
	assert.Equal(t, stored, updated.Permissions.Data())
}

func TestRemoveByEitherParty(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	repo.seed(connB, seniorA, familyB, StatusAccepted)
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, familyA, connA))
	require.NoError(t, svc.Remove(ctx, seniorA, connB))
	assert.Empty(t, repo.connections)

	assert.ErrorIs(t, svc.Remove(ctx, seniorA, connA), ErrConnectionNotFound)
}

func TestRemoveRejectsOutsider(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	svc := NewService(repo)

	assert.ErrorIs(t, svc.Remove(context.Background(), strangerID, connA), ErrNotParty)
	assert.Contains(t, repo.connections, connA)
}

func TestListForSeniorOnlyAccepted(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	repo.seed(connB, seniorA, familyB, StatusPending)
	repo.seed(connC, seniorA, familyC, StatusBlocked)
	name := "Fam One"
	repo.profiles[familyA] = PublicProfile{UserID: familyA, FullName: &name, Role: "family"}
	svc := NewService(repo)

	items, err := svc.ListForSenior(context.Background(), seniorA)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, connA, items[0].ID)
	assert.Equal(t, "Fam One", *items[0].Counterpart.FullName)
}

func TestListForFamilyMemberOnlyAccepted(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	repo.seed(connB, seniorB, familyA, StatusRejected)
	svc := NewService(repo)

	items, err := svc.ListForFamilyMember(context.Background(), familyA)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, seniorA, items[0].SeniorID)
}

func TestListRequestsDirection(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, userA, familyA, StatusPending)
	repo.seed(connB, seniorB, userA, StatusAccepted)
	repo.seed(connC, seniorC, familyC, StatusPending)
	svc := NewService(repo)
	ctx := context.Background()

	requests, err := svc.ListRequests(ctx, userA, nil)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, DirectionOutgoing, requests[0].Direction)
	assert.Equal(t, DirectionIncoming, requests[1].Direction)

	pending := StatusPending
	requests, err = svc.ListRequests(ctx, userA, &pending)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, connA, requests[0].ID)

	bogus := Status("nope")
	_, err = svc.ListRequests(ctx, userA, &bogus)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNotificationRecipients(t *testing.T) {
	repo := newFakeConnectionRepo()
	repo.seed(connA, seniorA, familyA, StatusAccepted)
	muted := repo.seed(connB, seniorA, familyB, StatusAccepted)
	muted.Permissions = datatypes.NewJSONType(Permissions{ViewHealth: flag(true)})
	repo.seed(connC, seniorA, familyC, StatusPending)
	svc := NewService(repo)

	recipients, err := svc.NotificationRecipients(context.Background(), seniorA)
	require.NoError(t, err)
	assert.Equal(t, []string{familyA}, recipients)
}

func TestMalformedIDs(t *testing.T) {
	repo := newFakeConnectionRepo()
	// Stored under a non-UUID key so a lookup that reached the store would find it.
	repo.seed("abc", seniorA, familyA, StatusAccepted)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "abc", familyA, RelationshipChild)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.Create(ctx, seniorA, "abc", RelationshipChild)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
	_, err = svc.GetForParty(ctx, seniorA, "abc")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
	_, err = svc.UpdateStatus(ctx, seniorA, "abc", StatusBlocked)
	assert.ErrorIs(t, err, ErrConnectionNotFound)
	_, err = svc.UpdatePermissions(ctx, seniorA, "abc", Permissions{})
	assert.ErrorIs(t, err, ErrConnectionNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, seniorA, "abc"), ErrConnectionNotFound)

	repo.failWith = errors.New("invalid input syntax for type uuid")
	found, err := svc.Exists(ctx, "abc", familyA)
	require.NoError(t, err)
	assert.Nil(t, found)
}
