package connections

import (
	connectiondomain "carelink-go/internal/domain/connection"
	"carelink-go/pkg/logger"
)

type Handlers struct {
	Connections *connectiondomain.Service
	log         logger.Logger
}

func New(connections *connectiondomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Connections: connections,
		log:         log,
	}
}
