package store

import "github.com/MKhiriev/tasky/internal/logger"

// Repositories bundles every data-access interface behind one construction
// point so the service layer receives a single dependency.
type Repositories struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		TaskRepository: NewTaskRepository(db, logger),
	}
}
