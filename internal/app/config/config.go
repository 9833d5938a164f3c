package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
	setDefaults()
	viper.AutomaticEnv()
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_VERSION", "v1")
	viper.SetDefault("APP_ADDRESS", "0.0.0.0")
	viper.SetDefault("APP_TIMEZONE", "Europe/Paris")
	viper.SetDefault("APP_ENDPOINT_PREFIX", "api")
	viper.SetDefault("APP_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("APP_MAX_REQUESTS", 100)
	viper.SetDefault("APP_SHUTDOWN_TIMEOUT", 10)
	viper.SetDefault("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60)
	viper.SetDefault("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 26)
	viper.SetDefault("APP_RABBITMQ_EVENTS_EXCHANGE", "clinic.events")

	viper.SetDefault("JWT_EXP_TIME_IN_HOUR", 24)

	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_LOCAL_DIR", "uploads")
	viper.SetDefault("ATTACHMENT_MAX_SIZE_IN_MB", 5)
	viper.SetDefault("ATTACHMENT_MAX_FILES_PER_REQUEST", 5)

	viper.SetDefault("MONGODB_URI", "")
	viper.SetDefault("MONGODB_HOST", "localhost")
	viper.SetDefault("MONGODB_PORT", "27017")
	viper.SetDefault("MONGODB_DB_NAME", "clinic")
	viper.SetDefault("MONGODB_USERNAME", "")
	viper.SetDefault("MONGODB_PASSWORD", "")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("RABBITMQ_ENABLED", false)
	viper.SetDefault("RABBITMQ_HOST", "localhost")
	viper.SetDefault("RABBITMQ_PORT", "5672")
	viper.SetDefault("RABBITMQ_USERNAME", "guest")
	viper.SetDefault("RABBITMQ_PASSWORD", "guest")

	viper.SetDefault("MINIO_HOST", "localhost")
	viper.SetDefault("MINIO_PORT", "9000")
	viper.SetDefault("MINIO_USERNAME", "minioadmin")
	viper.SetDefault("MINIO_PASSWORD", "minioadmin")
	viper.SetDefault("MINIO_BUCKET_NAME", "medical-attachments")
	viper.SetDefault("MINIO_USE_SSL", false)

	viper.SetDefault("LOGGER_LEVEL", "debug")
	viper.SetDefault("LOGGER_ENCODING", "json")
	viper.SetDefault("LOGGER_OUTPUT_FILENAME", "logger.log")
	viper.SetDefault("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log")
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      viper.GetString("MONGODB_URI"),
			Port:     viper.GetString("MONGODB_PORT"),
			Host:     viper.GetString("MONGODB_HOST"),
			DbName:   viper.GetString("MONGODB_DB_NAME"),
			Username: viper.GetString("MONGODB_USERNAME"),
			Password: viper.GetString("MONGODB_PASSWORD"),
		},
		Redis: Redis{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  viper.GetBool("RABBITMQ_ENABLED"),
			Host:     viper.GetString("RABBITMQ_HOST"),
			Port:     viper.GetString("RABBITMQ_PORT"),
			Username: viper.GetString("RABBITMQ_USERNAME"),
			Password: viper.GetString("RABBITMQ_PASSWORD"),
		},
		Minio: Minio{
			Host:       viper.GetString("MINIO_HOST"),
			Port:       viper.GetString("MINIO_PORT"),
			Username:   viper.GetString("MINIO_USERNAME"),
			Password:   viper.GetString("MINIO_PASSWORD"),
			BucketName: viper.GetString("MINIO_BUCKET_NAME"),
			UseSSL:     viper.GetBool("MINIO_USE_SSL"),
		},
		Logger: Logger{
			Level:               viper.GetString("LOGGER_LEVEL"),
			Encoding:            viper.GetString("LOGGER_ENCODING"),
			OutputFileName:      viper.GetString("LOGGER_OUTPUT_FILENAME"),
			OutputErrorFileName: viper.GetString("LOGGER_OUTPUT_ERROR_FILENAME"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        viper.GetString("APP_ENV"),
			Port:                       viper.GetString("APP_PORT"),
			Version:                    viper.GetString("APP_VERSION"),
			Address:                    viper.GetString("APP_ADDRESS"),
			Timezone:                   viper.GetString("APP_TIMEZONE"),
			EndpointPrefix:             strings.Trim(viper.GetString("APP_ENDPOINT_PREFIX"), "/"),
			AllowedOrigins:             splitAndTrim(viper.GetString("APP_ALLOWED_ORIGINS")),
			MaxRequests:                viper.GetInt("APP_MAX_REQUESTS"),
			ShutdownTimeout:            viper.GetInt("APP_SHUTDOWN_TIMEOUT"),
			MaxTimeRequestsPerSeconds:  viper.GetInt("APP_MAX_TIME_REQUESTS_PER_SECONDS"),
			RequestBodyLimitInMegabyte: viper.GetInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE"),
			RabbitMQEventsExchange:     viper.GetString("APP_RABBITMQ_EVENTS_EXCHANGE"),
		},
		JWT: JWT{
			Secret:        viper.GetString("JWT_SECRET"),
			ExpTimeInHour: viper.GetInt("JWT_EXP_TIME_IN_HOUR"),
		},
		Storage: Storage{
			Driver:                   viper.GetString("STORAGE_DRIVER"),
			LocalDir:                 viper.GetString("STORAGE_LOCAL_DIR"),
			AttachmentMaxSizeInMB:    viper.GetInt64("ATTACHMENT_MAX_SIZE_IN_MB"),
			AttachmentMaxFilesPerReq: viper.GetInt("ATTACHMENT_MAX_FILES_PER_REQUEST"),
		},
	}
}

func splitAndTrim(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
