package common

import (
	"errors"
	"net/http"
	"time"

	userdomain "carelink-go/internal/domain/user"
	"carelink-go/internal/transport/httpserver/middleware"
)

type ProfileResponse struct {
	UserID    string  `json:"user_id"`
	Email     *string `json:"email"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// PublicProfileResponse is what the other side of a connection may see.
type PublicProfileResponse struct {
	UserID    string  `json:"user_id"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"role"`
}

type updateProfileRequest struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
}

func (h *Handlers) GetProfileMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteUnauthorized(w)
		return
	}

	profile, err := h.Profiles.GetProfile(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, userdomain.ErrProfileNotFound) {
			h.log.BusinessError("profiles.get_me: profile not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "profile_not_found", "profile not found")
			return
		}
		h.log.InternalError("profiles.get_me: get profile failed", err, "user_id", user.ID)
		WriteInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, ToProfileResponse(profile))
}

func (h *Handlers) UpdateProfileMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteUnauthorized(w)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidJSON(w)
		return
	}

	profile, err := h.Profiles.UpdateProfile(r.Context(), userdomain.UpdateProfileInput{
		UserID:    user.ID,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrInvalidRole):
			h.log.BusinessError("profiles.update_me: invalid role", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", "role must be senior or family")
		case errors.Is(err, userdomain.ErrProfileNotFound):
			h.log.BusinessError("profiles.update_me: profile not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "profile_not_found", "profile not found")
		default:
			h.log.InternalError("profiles.update_me: update profile failed", err, "user_id", user.ID)
			WriteInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, ToProfileResponse(profile))
}

func ToProfileResponse(profile *userdomain.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:    profile.UserID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Role:      profile.Role,
		Phone:     profile.Phone,
		CreatedAt: profile.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPublicProfileResponse(userID string, fullName, avatarURL *string, role string) PublicProfileResponse {
	return PublicProfileResponse{
		UserID:    userID,
		FullName:  fullName,
		AvatarURL: avatarURL,
		Role:      role,
	}
}
