package services

import (
	"context"
	"errors"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func newTestLogger() outbound.LoggerPort {
	return adapters.NewZerologWrapperFrom(zerolog.Nop())
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(10)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}

func ptr(f float64) *float64 {
	return &f
}

type fakeWeather struct {
	reading domain.WeatherReading
	err     error
}

func (f *fakeWeather) Lookup(_ context.Context, _ string) domain.WeatherLookup {
	if f.err != nil {
		return domain.WeatherLookup{Reading: domain.DefaultWeatherReading(), Fallback: true, Reason: f.err}
	}
	return domain.WeatherLookup{Reading: f.reading}
}

type fakeSynthesizer struct {
	name  string
	audio []byte
	err   error
	panic bool

	mu    sync.Mutex
	calls []outbound.SynthesizeSpeechRequest
}

func (f *fakeSynthesizer) Name() string {
	return f.name
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.panic {
		panic("backend exploded")
	}
	return f.audio, f.err
}

func (f *fakeSynthesizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeAudioStore struct {
	err error

	mu    sync.Mutex
	saved []outbound.SaveAudioRequest
}

func (f *fakeAudioStore) Save(_ context.Context, req outbound.SaveAudioRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.mu.Lock()
	f.saved = append(f.saved, req)
	f.mu.Unlock()
	return req.BaseURL + "/audio/" + req.FileName, nil
}

type fakeRecorder struct {
	outcomes chan domain.CallOutcome
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{outcomes: make(chan domain.CallOutcome, 4)}
}

func (f *fakeRecorder) Record(_ context.Context, outcome domain.CallOutcome) error {
	f.outcomes <- outcome
	return nil
}

var errUpstream = errors.New("upstream unavailable")
