package inbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type CollectDigitRequest struct {
	CallID string
	Digit  string
	// BaseURL is used to build the public URL of the synthesized audio.
	BaseURL string
}

type CallFlowPort interface {
	Entry(ctx context.Context) domain.Response
	SelectLanguage(ctx context.Context, callID string, digit string) domain.Response
	CollectDigit(ctx context.Context, req CollectDigitRequest) domain.Response
	Reprompt(ctx context.Context, callID string) domain.Response
}
