package config

type TwilioConfig struct {
	AccountSID string `validate:"required"`
	AuthToken  string `validate:"required"`
	FromNumber string
	// ValidateSignature rejects webhooks whose X-Twilio-Signature does not
	// match AuthToken.
	ValidateSignature bool
}

// GetTwilioConfig returns nil when no credentials are configured. Webhooks
// still work without them; outbound calls and signature checks do not.
func GetTwilioConfig() (*TwilioConfig, error) {
	accountSID := getEnv("TWILIO_ACCOUNT_SID", "")
	authToken := getEnv("TWILIO_AUTH_TOKEN", "")
	if accountSID == "" && authToken == "" {
		return nil, nil
	}

	validateSignature, err := getEnvBool("TWILIO_VALIDATE_SIGNATURE", false)
	if err != nil {
		return nil, err
	}

	conf := &TwilioConfig{
		AccountSID:        accountSID,
		AuthToken:         authToken,
		FromNumber:        getEnv("TWILIO_FROM_NUMBER", ""),
		ValidateSignature: validateSignature,
	}
	if err := validateConfig("twilio", conf); err != nil {
		return nil, err
	}
	return conf, nil
}

type OutboundCallConfig struct {
	To         string `validate:"required,e164"`
	From       string `validate:"required,e164"`
	WebhookURL string `validate:"required,url"`
}

// GetOutboundCallConfig reads the one-shot outbound call parameters.
// NGROK_URL is accepted for the webhook URL as well as PUBLIC_BASE_URL.
func GetOutboundCallConfig() (*OutboundCallConfig, error) {
	webhookURL := getEnv("NGROK_URL", "")
	if webhookURL == "" {
		if base := getEnv("PUBLIC_BASE_URL", ""); base != "" {
			webhookURL = base + "/ivr"
		}
	}

	conf := &OutboundCallConfig{
		To:         getEnv("TWILIO_TO_NUMBER", ""),
		From:       getEnv("TWILIO_FROM_NUMBER", ""),
		WebhookURL: webhookURL,
	}
	if err := validateConfig("outbound call", conf); err != nil {
		return nil, err
	}
	return conf, nil
}
