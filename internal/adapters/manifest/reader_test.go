package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/versioninfo/internal/domain"
)

func writePackage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writePackage(t, `{"name": "api", "version": "1.2.0", "dependencies": {"x": "1"}}`)

	pkg, err := NewReader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, domain.Package{Name: "api", Version: "1.2.0"}, pkg)
}

func TestLoad_Defaults(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		expectedErr error
		expectedPkg domain.Package
	}{
		{"missing file", nil, domain.ErrPackageNotFound, domain.Package{Version: "0.0.1"}},
		{"invalid json", ptr(`{"version": `), domain.ErrPackageNotFound, domain.Package{Version: "0.0.1"}},
		{"no version", ptr(`{"name": "api"}`), domain.ErrVersionUndefined, domain.Package{Name: "api", Version: "0.0.1"}},
		{"empty version", ptr(`{"version": ""}`), domain.ErrVersionUndefined, domain.Package{Version: "0.0.1"}},
		{"numeric version", ptr(`{"version": 2}`), domain.ErrVersionUndefined, domain.Package{Version: "0.0.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if tt.content != nil {
				path = writePackage(t, *tt.content)
			}

			pkg, err := NewReader().Load(path)

			assert.Equal(t, tt.expectedPkg, pkg)
			var defErr *domain.ConfigurationDefaultError
			require.ErrorAs(t, err, &defErr)
			assert.Equal(t, "0.0.1", defErr.Default)
			assert.Equal(t, path, defErr.Path)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func ptr(s string) *string { return &s }
