package logger

import (
	"clinic-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zap.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zap.InfoLevel, parseLevel("verbose"), "unknown levels fall back to info")
}

func TestNewZapLoggerDevelopment(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "error", Encoding: "console"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	log, err := NewZapLogger(driverConfig, internalConfig)

	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel), "info should be filtered at error level")
	assert.True(t, log.Core().Enabled(zap.ErrorLevel))
}
