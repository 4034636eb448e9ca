package seniors

import (
	seniordomain "carelink-go/internal/domain/senior"
	"carelink-go/pkg/logger"
)

// Handlers serve a senior's data to connected family members. The senior is
// named by the senior_id path parameter; the caller is always the requester.
type Handlers struct {
	Seniors *seniordomain.Service
	log     logger.Logger
}

func New(seniors *seniordomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Seniors: seniors,
		log:     log,
	}
}
