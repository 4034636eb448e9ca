package common

import (
	"context"

	userdomain "carelink-go/internal/domain/user"
	"carelink-go/pkg/logger"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Profiles *userdomain.Service
	db       Pinger
	log      logger.Logger
}

func New(profiles *userdomain.Service, db Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Profiles: profiles,
		db:       db,
		log:      log,
	}
}
