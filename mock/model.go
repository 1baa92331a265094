package mock_call

import "github.com/gulam-moin/interactive-voice-response/domain"

type MockCallRequest struct {
	LanguageDigit string `json:"language_digit" binding:"required,len=1"`
	// Pincode is keyed one character per webhook; it is not validated so that
	// malformed input can be exercised too.
	Pincode string `json:"pincode" binding:"required,max=12"`
}

type Turn struct {
	Webhook  string          `json:"webhook"`
	Digits   string          `json:"digits,omitempty"`
	Response domain.Response `json:"response"`
}

type Transcript struct {
	CallID string `json:"call_id"`
	Turns  []Turn `json:"turns"`
	// HungUp is set once a response ended the call.
	HungUp bool `json:"hung_up"`
}
