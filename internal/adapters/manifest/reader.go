package manifest

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/renato0307/versioninfo/internal/domain"
	"github.com/renato0307/versioninfo/internal/logging"
	"github.com/renato0307/versioninfo/internal/ports"
)

// FileName is the package descriptor looked up in the working directory
const FileName = "package.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reader loads package.json files
type Reader struct{}

// Verify interface compliance at compile time
var _ ports.PackageReader = (*Reader)(nil)

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// document holds the package.json fields the plugin reads. Values are left
// untyped so a non-string version counts as undefined instead of failing.
type document struct {
	Name    any `json:"name"`
	Version any `json:"version"`
}

// Load reads the descriptor at path. An unreadable or invalid file and a
// missing version both yield a package with the default version together
// with a *domain.ConfigurationDefaultError.
func (r *Reader) Load(path string) (domain.Package, error) {
	logging.Logger.Debug("Loading package descriptor", "path", path)

	fallback := domain.Package{Version: domain.DefaultPkgVersion}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, &domain.ConfigurationDefaultError{
			Default: domain.DefaultPkgVersion,
			Err:     fmt.Errorf("%w: %v", domain.ErrPackageNotFound, err),
			Path:    path,
		}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fallback, &domain.ConfigurationDefaultError{
			Default: domain.DefaultPkgVersion,
			Err:     fmt.Errorf("%w: %v", domain.ErrPackageNotFound, err),
			Path:    path,
		}
	}

	name, _ := doc.Name.(string)
	version, _ := doc.Version.(string)
	if version == "" {
		return domain.Package{Name: name, Version: domain.DefaultPkgVersion}, &domain.ConfigurationDefaultError{
			Default: domain.DefaultPkgVersion,
			Err:     domain.ErrVersionUndefined,
			Path:    path,
		}
	}

	return domain.Package{Name: name, Version: version}, nil
}
