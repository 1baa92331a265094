package adapters

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestWeatherGateway(t *testing.T, handler http.HandlerFunc, apiKey string) *openWeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conf := &config.OpenWeatherConfig{
		ApiUrl:      server.URL,
		ApiKey:      apiKey,
		CountryCode: "IN",
		Timeout:     time.Second,
	}
	return NewOpenWeatherGateway(NewContentFetcher(newTestLogger()), conf, newTestLogger()).(*openWeatherGateway)
}

func TestOpenWeatherGateway_Lookup(t *testing.T) {
	var query map[string]string
	gateway := newTestWeatherGateway(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"appid": r.URL.Query().Get("appid"),
			"units": r.URL.Query().Get("units"),
		}
		_, _ = w.Write([]byte(`{"cod":200,"weather":[{"description":"haze"}],"main":{"temp":29.5}}`))
	}, "secret")

	lookup := gateway.Lookup(context.Background(), "Mumbai")

	assert.False(t, lookup.Fallback)
	assert.Equal(t, "haze", lookup.Reading.Description)
	require.NotNil(t, lookup.Reading.TemperatureCelsius)
	assert.Equal(t, 29.5, *lookup.Reading.TemperatureCelsius)
	assert.Equal(t, map[string]string{"q": "Mumbai,IN", "appid": "secret", "units": "metric"}, query)
}

func TestOpenWeatherGateway_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		handler http.HandlerFunc
	}{
		{
			name:   "missing api key",
			apiKey: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("no request expected without an api key")
			},
		},
		{
			name:   "city not found",
			apiKey: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			},
		},
		{
			name:   "non success cod in body",
			apiKey: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"cod":"401","message":"invalid key"}`))
			},
		},
		{
			name:   "missing fields",
			apiKey: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"cod":200,"weather":[]}`))
			},
		},
		{
			name:   "malformed body",
			apiKey: "secret",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestWeatherGateway(t, tt.handler, tt.apiKey)

			lookup := gateway.Lookup(context.Background(), "Nowhere")

			assert.True(t, lookup.Fallback)
			assert.Error(t, lookup.Reason)
			assert.Equal(t, domain.DefaultWeatherReading(), lookup.Reading)
		})
	}
}

func TestOpenWeatherGateway_Timeout(t *testing.T) {
	gateway := newTestWeatherGateway(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, "secret")
	gateway.conf.Timeout = 20 * time.Millisecond

	lookup := gateway.Lookup(context.Background(), "Mumbai")

	assert.True(t, lookup.Fallback)
	assert.Equal(t, domain.DefaultWeatherDescription, lookup.Reading.Description)
}

func TestOpenWeatherGateway_TimeoutDoesNotLogApiKey(t *testing.T) {
	logger, logs := newBufferedTestLogger()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)

	conf := &config.OpenWeatherConfig{
		ApiUrl:      server.URL,
		ApiKey:      "SECRET-KEY-123",
		CountryCode: "IN",
		Timeout:     20 * time.Millisecond,
	}
	gateway := NewOpenWeatherGateway(NewContentFetcher(logger), conf, logger)

	lookup := gateway.Lookup(context.Background(), "Mumbai")

	assert.True(t, lookup.Fallback)
	require.Error(t, lookup.Reason)
	assert.NotContains(t, lookup.Reason.Error(), "SECRET-KEY-123")
	assert.Contains(t, logs.String(), "Weather lookup failed")
	assert.NotContains(t, logs.String(), "SECRET-KEY-123")
}
