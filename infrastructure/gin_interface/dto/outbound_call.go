package dto

type PlaceCallRequest struct {
	To   string `json:"to" binding:"required,e164"`
	From string `json:"from" binding:"omitempty,e164"`
	// WebhookURL defaults to the service's own /ivr endpoint.
	WebhookURL string `json:"url" binding:"omitempty,url"`
}

type PlaceCallResponse struct {
	CallID string `json:"call_id"`
	Status string `json:"status,omitempty"`
}
