package storage

import (
	"clinic-service/internal/app/config"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLocalFsRootsAtConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	internalConfig := &config.InternalConfig{Storage: config.Storage{LocalDir: dir}}

	fs, err := NewLocalFs(internalConfig, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "scan.pdf", []byte("%PDF-"), 0o644))

	exists, err := afero.Exists(afero.NewOsFs(), dir+"/scan.pdf")
	require.NoError(t, err)
	assert.True(t, exists, "file should land under the configured directory")
}
