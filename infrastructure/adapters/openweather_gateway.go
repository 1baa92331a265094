package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"net/http"
	"net/url"
)

var (
	ErrMissingAPIKey      = errors.New("weather API key is not configured")
	ErrUnexpectedResponse = errors.New("weather API returned an unexpected payload")
)

type openWeatherResponse struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

type openWeatherGateway struct {
	ContentFetcher
	logger outbound.LoggerPort
	conf   *config.OpenWeatherConfig
}

func NewOpenWeatherGateway(contentFetcher ContentFetcher, conf *config.OpenWeatherConfig, logger outbound.LoggerPort) outbound.WeatherGatewayPort {
	return &openWeatherGateway{
		ContentFetcher: contentFetcher,
		logger:         logger,
		conf:           conf,
	}
}

func (g *openWeatherGateway) Lookup(ctx context.Context, placeName string) domain.WeatherLookup {
	reading, err := g.fetch(ctx, placeName)
	if err != nil {
		g.logger.WarnWithFields("Weather lookup failed", map[string]interface{}{
			"place": placeName,
			"error": err.Error(),
		})
		return domain.WeatherLookup{
			Reading:  domain.DefaultWeatherReading(),
			Fallback: true,
			Reason:   err,
		}
	}
	return domain.WeatherLookup{Reading: reading}
}

func (g *openWeatherGateway) fetch(ctx context.Context, placeName string) (domain.WeatherReading, error) {
	if g.conf.ApiKey == "" {
		return domain.WeatherReading{}, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, g.conf.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("q", placeName+","+g.conf.CountryCode)
	query.Set("appid", g.conf.ApiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.conf.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("failed to build weather request: %w", RedactError(err))
	}
	req.Header.Set("Accept", "application/json")

	payload, err := g.FetchContent(req)
	if err != nil {
		return domain.WeatherReading{}, err
	}

	var res openWeatherResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if res.Cod.String() != "200" {
		return domain.WeatherReading{}, fmt.Errorf("%w: cod=%s message=%q", ErrUnexpectedResponse, res.Cod, res.Message)
	}
	if len(res.Weather) == 0 || res.Main == nil || res.Main.Temp == nil {
		return domain.WeatherReading{}, ErrUnexpectedResponse
	}

	return domain.WeatherReading{
		Description:        res.Weather[0].Description,
		TemperatureCelsius: res.Main.Temp,
	}, nil
}
