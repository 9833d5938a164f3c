package config

type (
	InternalConfig struct {
		App     App
		JWT     JWT
		Storage Storage
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		AllowedOrigins             []string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		RabbitMQEventsExchange     string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Storage struct {
		Driver                   string
		LocalDir                 string
		AttachmentMaxSizeInMB    int64
		AttachmentMaxFilesPerReq int
	}

	MongoDB struct {
		URI      string
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}

	RabbitMQ struct {
		Enabled  bool
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		Encoding            string
		OutputFileName      string
		OutputErrorFileName string
	}
)

func (a App) IsProduction() bool {
	return a.Env == "production"
}

// BasePath is the route prefix every API endpoint hangs under.
func (a App) BasePath() string {
	return "/" + a.EndpointPrefix + "/" + a.Version
}

func (s Storage) AttachmentMaxSizeInBytes() int64 {
	return s.AttachmentMaxSizeInMB << 20
}
