package storage

import (
	"clinic-service/internal/app/config"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewLocalFs roots an afero filesystem at the configured attachment directory.
func NewLocalFs(internalConfig *config.InternalConfig, log *zap.Logger) (afero.Fs, error) {
	dir := internalConfig.Storage.LocalDir
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory %s: %w", dir, err)
	}
	log.Info("Using local attachment storage", zap.String("dir", dir))
	return afero.NewBasePathFs(osFs, dir), nil
}
