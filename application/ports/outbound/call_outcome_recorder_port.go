package outbound

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

type CallOutcomeRecorderPort interface {
	Record(ctx context.Context, outcome domain.CallOutcome) error
}
