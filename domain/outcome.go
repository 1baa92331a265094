package domain

import (
	"errors"
	"time"
)

var (
	ErrSessionComplete = errors.New("session already holds a complete pincode")
	ErrSessionNotFound = errors.New("call session not found")
)

// WeatherLookup always carries a usable reading. Fallback is set when the
// reading is the default rather than data from the provider.
type WeatherLookup struct {
	Reading  WeatherReading
	Fallback bool
	Reason   error
}

type PriceLookup struct {
	Quote    PriceQuote
	Fallback bool
	Reason   error
}

type SynthesisOutcome struct {
	Audio       []byte
	ContentType string
	Backend     string
	Err         error
}

func FailedSynthesis(backend string, err error) SynthesisOutcome {
	return SynthesisOutcome{Backend: backend, Err: err}
}

func (o SynthesisOutcome) OK() bool {
	return o.Err == nil && len(o.Audio) > 0
}

type DeliveryMode string

const (
	DeliveryAudio  DeliveryMode = "audio"
	DeliverySpoken DeliveryMode = "say"
	DeliveryNone   DeliveryMode = "none"
)

type CallOutcome struct {
	ID         string
	CallID     string
	Pincode    string
	Language   Language
	Location   ResolvedLocation
	Weather    WeatherLookup
	Price      PriceLookup
	Message    ComposedMessage
	AudioURL   string
	Delivery   DeliveryMode
	FinishedAt time.Time
}
