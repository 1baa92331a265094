package config

import (
	"fmt"
	"strconv"
)

type ElevenLabsConfig struct {
	ApiUrl          string  `validate:"required,url"`
	ApiKey          string  `validate:"required"`
	ModelId         string  `validate:"required"`
	VoiceID         string  `validate:"required"`
	Stability       float64 `validate:"gte=0,lte=1"`
	SimilarityBoost float64 `validate:"gte=0,lte=1"`
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	stability, err := strconv.ParseFloat(getEnv("ELEVEN_LABS_STABILITY", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse eleven labs stability: %w", err)
	}
	similarityBoost, err := strconv.ParseFloat(getEnv("ELEVEN_LABS_SIMILARITY_BOOST", "0.75"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse eleven labs similarity boost: %w", err)
	}

	conf := &ElevenLabsConfig{
		ApiUrl:          getEnv("ELEVEN_LABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ApiKey:          getEnv("ELEVEN_LABS_API_KEY", ""),
		ModelId:         getEnv("ELEVEN_LABS_MODEL_ID", "eleven_multilingual_v2"),
		VoiceID:         getEnv("ELEVEN_LABS_VOICE_ID", ""),
		Stability:       stability,
		SimilarityBoost: similarityBoost,
	}
	if err := validateConfig("eleven labs", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
