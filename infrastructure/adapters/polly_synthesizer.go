package adapters

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"io"
	"time"
)

var pollyLanguageCodes = map[domain.Language]string{
	domain.English: "en-IN",
	domain.Hindi:   "hi-IN",
}

type pollySynthesizer struct {
	logger   outbound.LoggerPort
	pollySvc pollyiface.PollyAPI
	conf     *config.PollyConfig
}

func NewPollySynthesizer(pollySvc pollyiface.PollyAPI, conf *config.PollyConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &pollySynthesizer{
		logger:   logger,
		pollySvc: pollySvc,
		conf:     conf,
	}
}

func (p *pollySynthesizer) Name() string {
	return "polly"
}

// Synthesize tries the neural engine first and retries once with the
// standard engine, since not every voice has a neural variant. The neural
// attempt may use at most half of the remaining deadline.
func (p *pollySynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	neuralCtx, cancel := neuralAttemptContext(ctx)
	audio, err := p.synthesize(neuralCtx, req, polly.EngineNeural)
	cancel()
	if err == nil {
		return audio, nil
	}

	p.logger.WarnWithFields("Neural Polly synthesis failed, retrying with standard engine", map[string]interface{}{
		"voice": p.conf.VoiceID,
		"error": err.Error(),
	})

	audio, err = p.synthesize(ctx, req, polly.EngineStandard)
	if err != nil {
		return nil, fmt.Errorf("polly synthesis failed: %w", err)
	}
	return audio, nil
}

func (p *pollySynthesizer) synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest, engine string) ([]byte, error) {
	input := &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		OutputFormat: aws.String(polly.OutputFormatMp3),
		VoiceId:      aws.String(p.conf.VoiceID),
		Engine:       aws.String(engine),
	}
	if code, ok := pollyLanguageCodes[req.Language]; ok {
		input.LanguageCode = aws.String(code)
	}

	out, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		return nil, err
	}
	if out.AudioStream == nil {
		return nil, fmt.Errorf("polly returned no audio stream")
	}

	defer func(stream io.ReadCloser) {
		err := stream.Close()
		if err != nil {
			p.logger.Error(err, "Failed to close the polly audio stream")
		}
	}(out.AudioStream)

	return io.ReadAll(out.AudioStream)
}

func neuralAttemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Until(deadline)/2)
}
