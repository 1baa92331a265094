package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

var ErrNoMandiRecords = errors.New("no mandi price records for place")

const kilogramsPerQuintal = 100

type mandiPriceResponse struct {
	Records []struct {
		Market     string `json:"market"`
		District   string `json:"district"`
		State      string `json:"state"`
		ModalPrice string `json:"modal_price"`
	} `json:"records"`
}

// mandiPriceGateway reads modal wholesale prices from the Agmarknet dataset
// on data.gov.in and falls back to another price gateway on any failure.
type mandiPriceGateway struct {
	ContentFetcher
	logger   outbound.LoggerPort
	conf     *config.MandiPriceConfig
	fallback outbound.PriceGatewayPort
}

func NewMandiPriceGateway(contentFetcher ContentFetcher, conf *config.MandiPriceConfig, fallback outbound.PriceGatewayPort,
	logger outbound.LoggerPort) outbound.PriceGatewayPort {
	return &mandiPriceGateway{
		ContentFetcher: contentFetcher,
		logger:         logger,
		conf:           conf,
		fallback:       fallback,
	}
}

func (g *mandiPriceGateway) Lookup(ctx context.Context, placeName string) domain.PriceLookup {
	quote, err := g.fetch(ctx, placeName)
	if err != nil {
		g.logger.WarnWithFields("Mandi price lookup failed, using price table", map[string]interface{}{
			"place": placeName,
			"error": err.Error(),
		})
		lookup := g.fallback.Lookup(ctx, placeName)
		lookup.Fallback = true
		if lookup.Reason == nil {
			lookup.Reason = err
		}
		return lookup
	}
	return domain.PriceLookup{Quote: quote}
}

func (g *mandiPriceGateway) fetch(ctx context.Context, placeName string) (domain.PriceQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, g.conf.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("api-key", g.conf.ApiKey)
	query.Set("format", "json")
	query.Set("limit", "10")
	query.Set("filters[commodity]", g.conf.Commodity)
	query.Set("filters[district]", placeName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.conf.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build mandi request: %w", RedactError(err))
	}

	payload, err := g.FetchContent(req)
	if err != nil {
		return 0, err
	}

	var res mandiPriceResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return 0, fmt.Errorf("failed to decode mandi response: %w", err)
	}

	return averageModalPrice(res)
}

// averageModalPrice converts the quintal prices of all usable records to a
// rounded per-kilogram average.
func averageModalPrice(res mandiPriceResponse) (domain.PriceQuote, error) {
	var total float64
	var count int
	for _, record := range res.Records {
		perQuintal, err := strconv.ParseFloat(record.ModalPrice, 64)
		if err != nil || perQuintal <= 0 {
			continue
		}
		total += perQuintal
		count++
	}
	if count == 0 {
		return 0, ErrNoMandiRecords
	}
	return domain.PriceQuote(math.Round(total / float64(count) / kilogramsPerQuintal)), nil
}
