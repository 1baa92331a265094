package config

import "time"

type OpenWeatherConfig struct {
	ApiUrl string `validate:"required,url"`
	// ApiKey may be empty; lookups then fall back to the default reading.
	ApiKey      string
	CountryCode string        `validate:"required,len=2"`
	Timeout     time.Duration `validate:"gt=0"`
}

func GetOpenWeatherConfig() (*OpenWeatherConfig, error) {
	timeout, err := getEnvDuration("OPENWEATHER_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	conf := &OpenWeatherConfig{
		ApiUrl:      getEnv("OPENWEATHER_API_URL", "http://api.openweathermap.org/data/2.5/weather"),
		ApiKey:      getEnv("OPENWEATHER_KEY", ""),
		CountryCode: getEnv("OPENWEATHER_COUNTRY", "IN"),
		Timeout:     timeout,
	}
	if err := validateConfig("openweather", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
