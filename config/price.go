package config

import "time"

type MandiPriceConfig struct {
	ApiUrl    string        `validate:"required,url"`
	ApiKey    string        `validate:"required"`
	Commodity string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"`
}

// GetMandiPriceConfig returns nil when MANDI_API_KEY is unset; the static
// price table is used on its own in that case.
func GetMandiPriceConfig() (*MandiPriceConfig, error) {
	apiKey := getEnv("MANDI_API_KEY", "")
	if apiKey == "" {
		return nil, nil
	}

	timeout, err := getEnvDuration("MANDI_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	conf := &MandiPriceConfig{
		ApiUrl:    getEnv("MANDI_API_URL", "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"),
		ApiKey:    apiKey,
		Commodity: getEnv("MANDI_COMMODITY", "Tomato"),
		Timeout:   timeout,
	}
	if err := validateConfig("mandi price", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
