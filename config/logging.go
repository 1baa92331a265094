package config

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

type LoggingConfig struct {
	Level          string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format         string `validate:"oneof=json console"`
	FilePath       string
	FileMaxSizeMB  int `validate:"gte=1"`
	FileMaxBackups int `validate:"gte=0"`
	FileMaxAgeDays int `validate:"gte=0"`
}

func GetLoggingConfig() (*LoggingConfig, error) {
	maxSize, err := getEnvInt("LOG_FILE_MAX_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	maxBackups, err := getEnvInt("LOG_FILE_MAX_BACKUPS", 5)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("LOG_FILE_MAX_AGE_DAYS", 30)
	if err != nil {
		return nil, err
	}

	conf := &LoggingConfig{
		Level:          getEnv("LOG_LEVEL", "info"),
		Format:         getEnv("LOG_FORMAT", LogFormatJSON),
		FilePath:       getEnv("LOG_FILE_PATH", ""),
		FileMaxSizeMB:  maxSize,
		FileMaxBackups: maxBackups,
		FileMaxAgeDays: maxAge,
	}
	if err := validateConfig("logging", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
