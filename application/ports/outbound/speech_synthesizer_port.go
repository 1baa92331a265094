package outbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type SynthesizeSpeechRequest struct {
	Text     string
	Language domain.Language
}

type SpeechSynthesizerPort interface {
	Name() string
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
