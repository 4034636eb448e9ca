package user

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertProfile is called by the auth middleware on every verified request so
// a profile row exists for each principal. Empty values never clear stored data.
func (s *Service) UpsertProfile(ctx context.Context, userID, email, fullName, avatarURL string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	profile := Profile{UserID: userID, Role: RoleFamily}
	if email != "" {
		profile.Email = &email
	}
	if fullName != "" {
		profile.FullName = &fullName
	}
	if avatarURL != "" {
		profile.AvatarURL = &avatarURL
	}

	return s.repo.UpsertProfile(ctx, &profile)
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	return s.repo.GetProfile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*Profile, error) {
	profile, err := s.GetProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*input.Role))
		if role != RoleSenior && role != RoleFamily {
			return nil, ErrInvalidRole
		}
		profile.Role = role
	}
	if input.FullName != nil {
		profile.FullName = trimmedOrNil(*input.FullName)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = trimmedOrNil(*input.AvatarURL)
	}
	if input.Phone != nil {
		profile.Phone = trimmedOrNil(*input.Phone)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func trimmedOrNil(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
