package config

import (
	"fmt"
	"time"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type SessionConfig struct {
	Backend       string        `validate:"oneof=memory redis"`
	TTL           time.Duration `validate:"gt=0"`
	SweepInterval time.Duration `validate:"gt=0"`
	RedisURL      string        `validate:"required_if=Backend redis"`
	RedisPrefix   string
	MaxReprompts  int `validate:"gte=1"`
}

func GetSessionConfig() (*SessionConfig, error) {
	ttl, err := getEnvDuration("SESSION_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	sweep, err := getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	maxReprompts, err := getEnvInt("MAX_REPROMPTS", 3)
	if err != nil {
		return nil, err
	}

	conf := &SessionConfig{
		Backend:       getEnv("SESSION_STORE", SessionBackendMemory),
		TTL:           ttl,
		SweepInterval: sweep,
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPrefix:   getEnv("REDIS_SESSION_PREFIX", "ivr:session:"),
		MaxReprompts:  maxReprompts,
	}
	if err := validateConfig("session", conf); err != nil {
		return nil, fmt.Errorf("SESSION_STORE=%s: %w", conf.Backend, err)
	}
	return conf, nil
}
