package config

type PollyConfig struct {
	Region  string `validate:"required"`
	VoiceID string `validate:"required"`
	// Enabled is false when POLLY_ENABLED=false; English and Hindi are then
	// always delivered as spoken text.
	Enabled bool
}

func GetPollyConfig() (*PollyConfig, error) {
	enabled, err := getEnvBool("POLLY_ENABLED", true)
	if err != nil {
		return nil, err
	}

	conf := &PollyConfig{
		Region:  getEnv("AWS_REGION", "ap-south-1"),
		VoiceID: getEnv("POLLY_VOICE_ID", "Aditi"),
		Enabled: enabled,
	}
	if err := validateConfig("polly", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
