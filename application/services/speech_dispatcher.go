package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"time"
)

var (
	ErrNoSynthesizer = errors.New("no speech synthesizer configured for language")
	ErrEmptyAudio    = errors.New("speech synthesizer returned no audio")
)

const audioContentType = "audio/mpeg"

type speechDispatcher struct {
	logger  outbound.LoggerPort
	routes  map[domain.Language]outbound.SpeechSynthesizerPort
	timeout time.Duration
}

// NewSpeechDispatcher sends English and Hindi to the neural backend and
// Gujarati to the multilingual one. Either backend may be nil, in which case
// those languages always fail over to spoken text.
func NewSpeechDispatcher(logger outbound.LoggerPort, neural outbound.SpeechSynthesizerPort,
	multilingual outbound.SpeechSynthesizerPort, timeout time.Duration) inbound.SpeechDispatcherPort {
	routes := make(map[domain.Language]outbound.SpeechSynthesizerPort)
	if neural != nil {
		routes[domain.English] = neural
		routes[domain.Hindi] = neural
	}
	if multilingual != nil {
		routes[domain.Gujarati] = multilingual
	}
	return &speechDispatcher{
		logger:  logger,
		routes:  routes,
		timeout: timeout,
	}
}

func (s *speechDispatcher) Synthesize(ctx context.Context, text domain.ComposedMessage, language domain.Language) domain.SynthesisOutcome {
	synthesizer, ok := s.routes[language]
	if !ok {
		return domain.FailedSynthesis("", fmt.Errorf("%w: %s", ErrNoSynthesizer, language))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	audio, err := s.invoke(ctx, synthesizer, outbound.SynthesizeSpeechRequest{
		Text:     string(text),
		Language: language,
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Speech synthesis failed", map[string]interface{}{
			"backend":  synthesizer.Name(),
			"language": language,
		})
		return domain.FailedSynthesis(synthesizer.Name(), err)
	}
	if len(audio) == 0 {
		return domain.FailedSynthesis(synthesizer.Name(), ErrEmptyAudio)
	}

	return domain.SynthesisOutcome{
		Audio:       audio,
		ContentType: audioContentType,
		Backend:     synthesizer.Name(),
	}
}

// invoke turns a panicking backend into an ordinary failure.
func (s *speechDispatcher) invoke(ctx context.Context, synthesizer outbound.SpeechSynthesizerPort,
	req outbound.SynthesizeSpeechRequest) (audio []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s panicked: %v", synthesizer.Name(), p)
		}
	}()
	return synthesizer.Synthesize(ctx, req)
}
