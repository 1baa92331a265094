package adapters

import (
	"context"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// CallCreator is the part of the Twilio REST API used to place calls.
type CallCreator interface {
	CreateCall(params *twilioApi.CreateCallParams) (*twilioApi.ApiV2010Call, error)
}

type twilioCallPlacer struct {
	logger      outbound.LoggerPort
	calls       CallCreator
	defaultFrom string
}

func NewTwilioCallCreator(conf *config.TwilioConfig) CallCreator {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: conf.AccountSID,
		Password: conf.AuthToken,
	})
	return client.Api
}

func NewTwilioCallPlacer(calls CallCreator, defaultFrom string, logger outbound.LoggerPort) outbound.CallPlacerPort {
	return &twilioCallPlacer{
		logger:      logger,
		calls:       calls,
		defaultFrom: defaultFrom,
	}
}

func (t *twilioCallPlacer) PlaceCall(ctx context.Context, req outbound.PlaceCallRequest) (*outbound.PlaceCallResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from := req.From
	if from == "" {
		from = t.defaultFrom
	}
	if from == "" {
		return nil, fmt.Errorf("from number is required")
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(req.To)
	params.SetFrom(from)
	params.SetUrl(req.WebhookURL)
	params.SetMethod("POST")

	call, err := t.calls.CreateCall(params)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to place outbound call", map[string]interface{}{
			"to":  req.To,
			"url": req.WebhookURL,
		})
		return nil, fmt.Errorf("failed to place call: %w", err)
	}

	res := &outbound.PlaceCallResponse{}
	if call.Sid != nil {
		res.CallID = *call.Sid
	}
	if call.Status != nil {
		res.Status = fmt.Sprint(*call.Status)
	}

	t.logger.InfoWithFields("Outbound call placed", map[string]interface{}{
		"call_id": res.CallID,
		"to":      req.To,
	})
	return res, nil
}
