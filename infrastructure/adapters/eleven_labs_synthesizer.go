package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"net/http"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	LanguageCode  string        `json:"language_code,omitempty"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (e *elevenLabsSynthesizer) Name() string {
	return "elevenlabs"
}

func (e *elevenLabsSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	httpReq, err := e.getRequest(ctx, req)
	if err != nil {
		e.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio fetching", map[string]interface{}{
			"language": req.Language,
		})
		return nil, err
	}

	return e.FetchContent(httpReq)
}

func (e *elevenLabsSynthesizer) getRequest(ctx context.Context, req outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:         req.Text,
		ModelId:      e.elevenLabsConfig.ModelId,
		LanguageCode: req.Language.Code(),
		VoiceSettings: VoiceSettings{
			Stability:       e.elevenLabsConfig.Stability,
			SimilarityBoost: e.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := e.elevenLabsConfig.ApiUrl + "/" + e.elevenLabsConfig.VoiceID
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   e.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		httpReq.Header.Add(key, value)
	}

	return httpReq, nil
}
