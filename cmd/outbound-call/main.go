package main

import (
	"context"
	"fmt"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/infrastructure/adapters"
	"github.com/rs/zerolog/log"
	"time"
)

// Places a single outbound call whose webhook points at the IVR entry route.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env file")
	}

	twilioConfig, err := config.GetTwilioConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get twilio config")
	}
	if twilioConfig == nil {
		log.Fatal().Msg("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN must be set")
	}

	callConfig, err := config.GetOutboundCallConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get outbound call config")
	}

	zeroLogger := adapters.NewZerologWrapper()
	callPlacer := adapters.NewTwilioCallPlacer(adapters.NewTwilioCallCreator(twilioConfig), callConfig.From, zeroLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := callPlacer.PlaceCall(ctx, outbound.PlaceCallRequest{
		To:         callConfig.To,
		From:       callConfig.From,
		WebhookURL: callConfig.WebhookURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to place call")
	}

	fmt.Println(res.CallID)
}
