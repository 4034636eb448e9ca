package handler

import (
	"carelink-go/internal/transport/httpserver/handler/care"
	"carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/handler/connections"
	"carelink-go/internal/transport/httpserver/handler/seniors"
	"carelink-go/internal/transport/httpserver/handler/wellbeing"
)

type Handlers struct {
	Common      *common.Handlers
	Connections *connections.Handlers
	Seniors     *seniors.Handlers
	Care        *care.Handlers
	Wellbeing   *wellbeing.Handlers
}

func New(common *common.Handlers, connections *connections.Handlers, seniors *seniors.Handlers, care *care.Handlers, wellbeing *wellbeing.Handlers) *Handlers {
	return &Handlers{
		Common:      common,
		Connections: connections,
		Seniors:     seniors,
		Care:        care,
		Wellbeing:   wellbeing,
	}
}
