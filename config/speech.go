package config

import "time"

const (
	MultilingualProviderTranslate  = "gtts"
	MultilingualProviderElevenLabs = "elevenlabs"
	MultilingualProviderNone       = "none"
)

type SpeechConfig struct {
	MultilingualProvider string        `validate:"oneof=gtts elevenlabs none"`
	TranslateTTSURL      string        `validate:"required,url"`
	Timeout              time.Duration `validate:"gt=0"`
}

func GetSpeechConfig() (*SpeechConfig, error) {
	timeout, err := getEnvDuration("SYNTHESIS_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	conf := &SpeechConfig{
		MultilingualProvider: getEnv("MULTILINGUAL_TTS_PROVIDER", MultilingualProviderTranslate),
		TranslateTTSURL:      getEnv("TRANSLATE_TTS_URL", "https://translate.google.com/translate_tts"),
		Timeout:              timeout,
	}
	if err := validateConfig("speech", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
