package outbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type WeatherGatewayPort interface {
	Lookup(ctx context.Context, placeName string) domain.WeatherLookup
}
