package adapters

import (
	"context"
	"errors"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"strings"
)

var ErrNoPriceForPlace = errors.New("no price listed for place")

type CityPrice struct {
	City  string
	Price domain.PriceQuote
}

// DefaultCityPrices is matched in order against the place name,
// case-insensitively, by substring.
var DefaultCityPrices = []CityPrice{
	{City: "Ahmedabad", Price: 28},
	{City: "Surat", Price: 35},
	{City: "Mumbai", Price: 45},
	{City: "Delhi", Price: 30},
	{City: "Bengaluru", Price: 40},
	{City: "Chennai", Price: 38},
	{City: "Hyderabad", Price: 34},
	{City: "Kolkata", Price: 32},
}

type priceTableGateway struct {
	prices       []CityPrice
	defaultPrice domain.PriceQuote
}

func NewPriceTableGateway(prices []CityPrice, defaultPrice domain.PriceQuote) outbound.PriceGatewayPort {
	return &priceTableGateway{
		prices:       prices,
		defaultPrice: defaultPrice,
	}
}

func NewDefaultPriceTableGateway() outbound.PriceGatewayPort {
	return NewPriceTableGateway(DefaultCityPrices, domain.DefaultPriceQuote)
}

func (g *priceTableGateway) Lookup(_ context.Context, placeName string) domain.PriceLookup {
	place := strings.ToLower(placeName)
	for _, entry := range g.prices {
		if strings.Contains(place, strings.ToLower(entry.City)) {
			return domain.PriceLookup{Quote: entry.Price}
		}
	}
	return domain.PriceLookup{
		Quote:    g.defaultPrice,
		Fallback: true,
		Reason:   ErrNoPriceForPlace,
	}
}
