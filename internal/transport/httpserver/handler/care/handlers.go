package care

import (
	appointmentdomain "carelink-go/internal/domain/appointment"
	medicationdomain "carelink-go/internal/domain/medication"
	"carelink-go/pkg/logger"
)

type Handlers struct {
	Appointments *appointmentdomain.Service
	Medications  *medicationdomain.Service
	log          logger.Logger
}

func New(appointments *appointmentdomain.Service, medications *medicationdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Appointments: appointments,
		Medications:  medications,
		log:          log,
	}
}
