package database

import (
	"clinic-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoConnectionString(t *testing.T) {
	t.Run("URI wins over host settings", func(t *testing.T) {
		cfg := config.MongoDB{URI: "mongodb+srv://cluster.example/clinic", Host: "ignored"}
		assert.Equal(t, "mongodb+srv://cluster.example/clinic", mongoConnectionString(cfg))
	})

	t.Run("Credentials are embedded when set", func(t *testing.T) {
		cfg := config.MongoDB{Host: "db", Port: "27017", Username: "clinic", Password: "secret"}
		assert.Equal(t, "mongodb://clinic:secret@db:27017", mongoConnectionString(cfg))
	})

	t.Run("Anonymous connection without username", func(t *testing.T) {
		cfg := config.MongoDB{Host: "localhost", Port: "27017"}
		assert.Equal(t, "mongodb://localhost:27017", mongoConnectionString(cfg))
	})
}
