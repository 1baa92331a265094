package dto

// WebhookForm holds the fields Twilio posts with every voice webhook that
// the call flow reads.
type WebhookForm struct {
	CallSid    string `form:"CallSid" binding:"required"`
	Digits     string `form:"Digits"`
	From       string `form:"From"`
	To         string `form:"To"`
	CallStatus string `form:"CallStatus"`
}
