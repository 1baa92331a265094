package config

import "strings"

type ServerConfig struct {
	Port string `validate:"required,numeric"`
	// PublicBaseURL overrides the scheme://host taken from inbound requests
	// when building audio URLs, e.g. behind a tunnel that rewrites Host.
	PublicBaseURL  string `validate:"omitempty,url"`
	AudioDir       string `validate:"required"`
	WorkerPoolSize int    `validate:"gte=1"`
	EnableMock     bool

	// TrustForwardedHeaders is only safe behind a proxy or tunnel that
	// overwrites X-Forwarded-Proto and X-Forwarded-Host.
	TrustForwardedHeaders bool
}

func GetServerConfig() (*ServerConfig, error) {
	poolSize, err := getEnvInt("WORKER_POOL_SIZE", 120)
	if err != nil {
		return nil, err
	}
	enableMock, err := getEnvBool("ENABLE_MOCK_ROUTES", false)
	if err != nil {
		return nil, err
	}
	trustForwarded, err := getEnvBool("TRUST_FORWARDED_HEADERS", false)
	if err != nil {
		return nil, err
	}

	conf := &ServerConfig{
		Port:           getEnv("PORT", "8080"),
		PublicBaseURL:  strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", ""), "/"),
		AudioDir:       getEnv("AUDIO_DIR", "audio"),
		WorkerPoolSize: poolSize,
		EnableMock:     enableMock,

		TrustForwardedHeaders: trustForwarded,
	}
	if err := validateConfig("server", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
