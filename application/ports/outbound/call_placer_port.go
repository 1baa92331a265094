package outbound

import "context"

type PlaceCallRequest struct {
	To         string
	From       string
	WebhookURL string
}

type PlaceCallResponse struct {
	CallID string
	Status string
}

type CallPlacerPort interface {
	PlaceCall(ctx context.Context, req PlaceCallRequest) (*PlaceCallResponse, error)
}
