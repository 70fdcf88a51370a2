package mocks

import (
	"sentinel-backend/internal/models"
	"sentinel-backend/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockSystemProbe is a mock implementation of services.SystemProbe
type MockSystemProbe struct {
	mock.Mock
}

var _ services.SystemProbe = (*MockSystemProbe)(nil)

func (m *MockSystemProbe) Hostname() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockSystemProbe) Platform() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSystemProbe) Memory() (models.Memory, error) {
	args := m.Called()
	return args.Get(0).(models.Memory), args.Error(1)
}
