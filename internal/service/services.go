package service

import (
	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/store"
)

// Services bundles every business-logic interface behind one construction
// point so the transport layer receives a single dependency.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		TaskService: NewTaskService(repositories.TaskRepository, logger),
	}
}
