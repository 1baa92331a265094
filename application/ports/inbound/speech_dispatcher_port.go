package inbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type SpeechDispatcherPort interface {
	Synthesize(ctx context.Context, text domain.ComposedMessage, language domain.Language) domain.SynthesisOutcome
}
