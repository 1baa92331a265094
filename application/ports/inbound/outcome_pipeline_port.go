package inbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type RunOutcomeParams struct {
	CallID   string
	Pincode  string
	Language domain.Language
	BaseURL  string
}

type OutcomePipelinePort interface {
	Run(ctx context.Context, params RunOutcomeParams) domain.CallOutcome
}
