package wellbeing

import (
	activitydomain "carelink-go/internal/domain/activity"
	healthdomain "carelink-go/internal/domain/health"
	locationdomain "carelink-go/internal/domain/location"
	"carelink-go/pkg/logger"
)

type Handlers struct {
	Health     *healthdomain.Service
	Locations  *locationdomain.Service
	Activities *activitydomain.Service
	log        logger.Logger
}

func New(health *healthdomain.Service, locations *locationdomain.Service, activities *activitydomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Health:     health,
		Locations:  locations,
		Activities: activities,
		log:        log,
	}
}
