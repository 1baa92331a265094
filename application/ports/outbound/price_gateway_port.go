package outbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type PriceGatewayPort interface {
	Lookup(ctx context.Context, placeName string) domain.PriceLookup
}
