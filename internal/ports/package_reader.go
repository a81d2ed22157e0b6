package ports

import "github.com/renato0307/versioninfo/internal/domain"

// PackageReader loads the package descriptor.
// A *domain.ConfigurationDefaultError is returned alongside a usable, defaulted package.
type PackageReader interface {
	Load(path string) (domain.Package, error)
}
