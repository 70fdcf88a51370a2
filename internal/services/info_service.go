// filepath: internal/services/info_service.go
package services

import (
	"time"

	"sentinel-backend/internal/models"
	"sentinel-backend/internal/shared"

	"github.com/sirupsen/logrus"
)

// HelloMessage is the constant greeting of the root route.
const HelloMessage = "Hello from Backend!"

var _ InfoService = (*infoService)(nil)

type infoService struct {
	ServiceName string
	StartTime   time.Time

	probe  SystemProbe
	logger *logrus.Logger
	now    func() time.Time
}

// NewInfoService creates a new InfoService.
// startTime should come from time.Now so uptime uses the monotonic clock.
func NewInfoService(serviceName string, startTime time.Time, probe SystemProbe, logger *logrus.Logger) *infoService {
	return &infoService{
		ServiceName: serviceName,
		StartTime:   startTime,
		probe:       probe,
		logger:      logger,
		now:         time.Now,
	}
}

// GetInfo retrieves host and runtime information. Probe failures are logged
// and reported as zero values, they never fail the request.
func (s *infoService) GetInfo() models.Info {
	now := s.now()

	hostname, err := s.probe.Hostname()
	if err != nil {
		s.logger.WithError(err).Debug("hostname lookup failed")
	}

	memory, err := s.probe.Memory()
	if err != nil {
		s.logger.WithError(err).Debug("process memory lookup failed, reporting runtime figures")
	}

	uptime := now.Sub(s.StartTime).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	return models.Info{
		Message:   HelloMessage,
		Service:   s.ServiceName,
		Hostname:  hostname,
		Platform:  s.probe.Platform(),
		Uptime:    uptime,
		Memory:    memory,
		Timestamp: shared.FormatTimestamp(now),
	}
}
