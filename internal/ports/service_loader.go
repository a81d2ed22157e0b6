package ports

import "github.com/renato0307/versioninfo/internal/domain"

// ServiceLoader loads the host's service definition
type ServiceLoader interface {
	// Load reads the service from path, or discovers one in dir when path is empty
	Load(dir, path string) (*domain.Service, error)
}
