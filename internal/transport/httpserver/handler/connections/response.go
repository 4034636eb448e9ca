package connections

import (
	connectiondomain "carelink-go/internal/domain/connection"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
)

type connectionResponse struct {
	ID             string                       `json:"id"`
	SeniorID       string                       `json:"senior_id"`
	FamilyMemberID string                       `json:"family_member_id"`
	Relationship   string                       `json:"relationship"`
	Status         string                       `json:"status"`
	Permissions    connectiondomain.Permissions `json:"permissions"`
	CreatedAt      string                       `json:"created_at"`
	UpdatedAt      string                       `json:"updated_at"`
}

type profiledConnectionResponse struct {
	connectionResponse
	Counterpart commonhandler.PublicProfileResponse `json:"counterpart"`
}

type requestResponse struct {
	connectionResponse
	Direction string `json:"direction"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
}

func toConnectionResponse(connection *connectiondomain.Connection) connectionResponse {
	return connectionResponse{
		ID:             connection.ID,
		SeniorID:       connection.SeniorID,
		FamilyMemberID: connection.FamilyMemberID,
		Relationship:   string(connection.Relationship),
		Status:         string(connection.Status),
		Permissions:    connection.Permissions.Data(),
		CreatedAt:      commonhandler.FormatTime(connection.CreatedAt),
		UpdatedAt:      commonhandler.FormatTime(connection.UpdatedAt),
	}
}

func toProfiledResponses(connections []connectiondomain.ProfiledConnection) []profiledConnectionResponse {
	items := make([]profiledConnectionResponse, 0, len(connections))
	for i := range connections {
		item := connections[i]
		items = append(items, profiledConnectionResponse{
			connectionResponse: toConnectionResponse(&item.Connection),
			Counterpart: commonhandler.ToPublicProfileResponse(
				item.Counterpart.UserID,
				item.Counterpart.FullName,
				item.Counterpart.AvatarURL,
				item.Counterpart.Role,
			),
		})
	}
	return items
}

func toRequestResponses(requests []connectiondomain.Request) []requestResponse {
	items := make([]requestResponse, 0, len(requests))
	for i := range requests {
		item := requests[i]
		items = append(items, requestResponse{
			connectionResponse: toConnectionResponse(&item.Connection),
			Direction:          string(item.Direction),
		})
	}
	return items
}
