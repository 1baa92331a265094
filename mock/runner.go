package mock_call

import (
	"context"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/domain"
)

// Runner plays a scripted caller against the call flow, posting the same
// sequence of webhooks the telephony provider would.
type Runner struct {
	logger   outbound.LoggerPort
	callFlow inbound.CallFlowPort
}

func NewRunner(callFlow inbound.CallFlowPort, logger outbound.LoggerPort) *Runner {
	return &Runner{
		logger:   logger,
		callFlow: callFlow,
	}
}

func (r *Runner) Run(ctx context.Context, callID string, req MockCallRequest, baseURL string) Transcript {
	transcript := Transcript{CallID: callID}

	record := func(webhook, digits string, response domain.Response) bool {
		transcript.Turns = append(transcript.Turns, Turn{Webhook: webhook, Digits: digits, Response: response})
		if last, ok := response.Last(); ok && last.Kind == domain.VerbHangup {
			transcript.HungUp = true
		}
		return transcript.HungUp
	}

	record("/ivr", "", r.callFlow.Entry(ctx))
	if record("/language", req.LanguageDigit, r.callFlow.SelectLanguage(ctx, callID, req.LanguageDigit)) {
		return transcript
	}

	for _, digit := range req.Pincode {
		select {
		case <-ctx.Done():
			r.logger.WarnWithFields("Mock call abandoned", map[string]interface{}{
				"call_id": callID,
			})
			return transcript
		default:
		}

		response := r.callFlow.CollectDigit(ctx, inbound.CollectDigitRequest{
			CallID:  callID,
			Digit:   string(digit),
			BaseURL: baseURL,
		})
		if record("/collect_digit", string(digit), response) {
			break
		}
	}

	r.logger.InfoWithFields("Mock call finished", map[string]interface{}{
		"call_id": callID,
		"turns":   len(transcript.Turns),
		"hung_up": transcript.HungUp,
	})

	return transcript
}
