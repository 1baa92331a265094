package inbound

import "github.com/gulam-moin/interactive-voice-response/domain"

type ComposeMessageParams struct {
	Language   domain.Language
	PlaceLabel string
	Weather    domain.WeatherReading
	Price      domain.PriceQuote
}

type MessageComposerPort interface {
	Compose(params ComposeMessageParams) domain.ComposedMessage
}
