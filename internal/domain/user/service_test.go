package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles map[string]*Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*Profile)}
}

func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, profile *Profile) error {
	existing, ok := r.profiles[profile.UserID]
	if !ok {
		stored := *profile
		r.profiles[profile.UserID] = &stored
		return nil
	}
	if profile.Email != nil {
		existing.Email = profile.Email
	}
	if profile.FullName != nil {
		existing.FullName = profile.FullName
	}
	if profile.AvatarURL != nil {
		existing.AvatarURL = profile.AvatarURL
	}
	return nil
}

func (r *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	found := *profile
	return &found, nil
}

func (r *fakeProfileRepo) UpdateProfile(ctx context.Context, profile *Profile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func TestUpsertProfileKeepsExistingValues(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.UpsertProfile(ctx, "user-1", "a@example.com", "Ann", ""))
	require.NoError(t, svc.UpsertProfile(ctx, "user-1", "", "", "https://img"))

	profile := repo.profiles["user-1"]
	assert.Equal(t, "a@example.com", *profile.Email)
	assert.Equal(t, "Ann", *profile.FullName)
	assert.Equal(t, "https://img", *profile.AvatarURL)
	assert.Equal(t, RoleFamily, profile.Role)
}

func TestUpsertProfileRequiresUserID(t *testing.T) {
	svc := NewService(newFakeProfileRepo())
	assert.ErrorIs(t, svc.UpsertProfile(context.Background(), "", "", "", ""), ErrUserIDRequired)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["user-1"] = &Profile{UserID: "user-1", Role: RoleFamily}
	svc := NewService(repo)

	role, name, phone := " Senior ", "  Grace  ", " "
	updated, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:   "user-1",
		Role:     &role,
		FullName: &name,
		Phone:    &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, RoleSenior, updated.Role)
	assert.Equal(t, "Grace", *updated.FullName)
	assert.Nil(t, updated.Phone)
}

func TestUpdateProfileRejectsUnknownRole(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["user-1"] = &Profile{UserID: "user-1", Role: RoleFamily}
	svc := NewService(repo)

	role := "admin"
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: "user-1", Role: &role})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewService(newFakeProfileRepo())
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: "ghost"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
