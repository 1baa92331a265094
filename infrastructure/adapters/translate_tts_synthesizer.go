package adapters

import (
	"bytes"
	"context"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// The public translate TTS endpoint rejects requests longer than this.
const translateTTSMaxChunkRunes = 100

type translateTTSSynthesizer struct {
	ContentFetcher
	logger outbound.LoggerPort
	conf   *config.SpeechConfig
}

// NewTranslateTTSSynthesizer speaks any language the Google Translate voice
// supports, which is what gTTS wraps.
func NewTranslateTTSSynthesizer(contentFetcher ContentFetcher, conf *config.SpeechConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &translateTTSSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		conf:           conf,
	}
}

func (t *translateTTSSynthesizer) Name() string {
	return "translate-tts"
}

func (t *translateTTSSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	chunks := splitForSpeech(req.Text, translateTTSMaxChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	var audio bytes.Buffer
	for i, chunk := range chunks {
		httpReq, err := t.getRequest(ctx, chunk, req.Language.Code(), i, len(chunks))
		if err != nil {
			return nil, err
		}
		part, err := t.FetchContent(httpReq)
		if err != nil {
			t.logger.ErrorWithFields(err, "Failed to fetch speech chunk", map[string]interface{}{
				"chunk":    i,
				"chunks":   len(chunks),
				"language": req.Language,
			})
			return nil, err
		}
		audio.Write(part)
	}

	return audio.Bytes(), nil
}

func (t *translateTTSSynthesizer) getRequest(ctx context.Context, text, lang string, idx, total int) (*http.Request, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", lang)
	query.Set("q", text)
	query.Set("idx", fmt.Sprint(idx))
	query.Set("total", fmt.Sprint(total))
	query.Set("textlen", fmt.Sprint(utf8.RuneCountInString(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.conf.TranslateTTSURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create the translate tts request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "audio/mpeg")
	return req, nil
}

// splitForSpeech breaks text into chunks of at most maxRunes runes,
// preferring word boundaries and never splitting a rune.
func splitForSpeech(text string, maxRunes int) []string {
	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)

		for wordLen > maxRunes {
			flush()
			runes := []rune(word)
			chunks = append(chunks, string(runes[:maxRunes]))
			word = string(runes[maxRunes:])
			wordLen = len(runes) - maxRunes
		}

		sep := 0
		if currentLen > 0 {
			sep = 1
		}
		if currentLen+sep+wordLen > maxRunes {
			flush()
			sep = 0
		}
		if sep == 1 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
		currentLen += sep + wordLen
	}
	flush()

	return chunks
}
