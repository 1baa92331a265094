package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/gulam-moin/interactive-voice-response/application/ports/inbound"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/channel_utils"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"strings"
	"time"
)

const outcomeRecordTimeout = 5 * time.Second

type outcomePipeline struct {
	logger      outbound.LoggerPort
	workerPool  outbound.TaskDispatcher
	resolver    inbound.LocationResolverPort
	weather     outbound.WeatherGatewayPort
	price       outbound.PriceGatewayPort
	composer    inbound.MessageComposerPort
	synthesizer inbound.SpeechDispatcherPort
	audioStore  outbound.AudioStorePort
	recorder    outbound.CallOutcomeRecorderPort
	now         func() time.Time
}

type OutcomePipelineDeps struct {
	Logger      outbound.LoggerPort
	WorkerPool  outbound.TaskDispatcher
	Resolver    inbound.LocationResolverPort
	Weather     outbound.WeatherGatewayPort
	Price       outbound.PriceGatewayPort
	Composer    inbound.MessageComposerPort
	Synthesizer inbound.SpeechDispatcherPort
	AudioStore  outbound.AudioStorePort
	// Recorder is optional.
	Recorder outbound.CallOutcomeRecorderPort
	Now      func() time.Time
}

func NewOutcomePipeline(deps OutcomePipelineDeps) inbound.OutcomePipelinePort {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &outcomePipeline{
		logger:      deps.Logger,
		workerPool:  deps.WorkerPool,
		resolver:    deps.Resolver,
		weather:     deps.Weather,
		price:       deps.Price,
		composer:    deps.Composer,
		synthesizer: deps.Synthesizer,
		audioStore:  deps.AudioStore,
		recorder:    deps.Recorder,
		now:         now,
	}
}

func (p *outcomePipeline) Run(ctx context.Context, params inbound.RunOutcomeParams) domain.CallOutcome {
	logger := p.logger.With(map[string]interface{}{"call_id": params.CallID})

	location := p.resolver.Resolve(params.Pincode)
	place := location.PlaceName()

	weatherCh := channel_utils.Async(p.workerPool, func() domain.WeatherLookup {
		return p.weather.Lookup(ctx, place)
	}, func(recovered interface{}) domain.WeatherLookup {
		return domain.WeatherLookup{
			Reading:  domain.DefaultWeatherReading(),
			Fallback: true,
			Reason:   fmt.Errorf("weather lookup panicked: %v", recovered),
		}
	})
	priceCh := channel_utils.Async(p.workerPool, func() domain.PriceLookup {
		return p.price.Lookup(ctx, place)
	}, func(recovered interface{}) domain.PriceLookup {
		return domain.PriceLookup{
			Quote:    domain.DefaultPriceQuote,
			Fallback: true,
			Reason:   fmt.Errorf("price lookup panicked: %v", recovered),
		}
	})
	weather := <-weatherCh
	price := <-priceCh

	if weather.Fallback {
		logger.WarnWithFields("Using default weather reading", map[string]interface{}{
			"place":  place,
			"reason": errorString(weather.Reason),
		})
	}
	if price.Fallback {
		logger.DebugWithFields("Using default price quote", map[string]interface{}{
			"place":  place,
			"reason": errorString(price.Reason),
		})
	}

	message := p.composer.Compose(inbound.ComposeMessageParams{
		Language:   params.Language,
		PlaceLabel: location.Label(),
		Weather:    weather.Reading,
		Price:      price.Quote,
	})

	finishedAt := p.now()
	outcome := domain.CallOutcome{
		ID:         uuid.NewString(),
		CallID:     params.CallID,
		Pincode:    params.Pincode,
		Language:   params.Language,
		Location:   location,
		Weather:    weather,
		Price:      price,
		Message:    message,
		Delivery:   domain.DeliverySpoken,
		FinishedAt: finishedAt,
	}

	synthesis := p.synthesizer.Synthesize(ctx, message, params.Language)
	if synthesis.OK() {
		url, err := p.audioStore.Save(ctx, outbound.SaveAudioRequest{
			FileName:    AudioFileName(params.CallID, finishedAt, params.Language),
			Content:     synthesis.Audio,
			ContentType: synthesis.ContentType,
			BaseURL:     params.BaseURL,
		})
		if err != nil {
			logger.Error(err, "Failed to store synthesized audio, falling back to spoken text")
		} else {
			outcome.AudioURL = url
			outcome.Delivery = domain.DeliveryAudio
		}
	} else {
		logger.WarnWithFields("Speech synthesis unavailable, falling back to spoken text", map[string]interface{}{
			"backend": synthesis.Backend,
			"reason":  errorString(synthesis.Err),
		})
	}

	p.record(logger, outcome)

	logger.InfoWithFields("Call outcome ready", map[string]interface{}{
		"pincode":  params.Pincode,
		"place":    place,
		"delivery": outcome.Delivery,
	})

	return outcome
}

func (p *outcomePipeline) record(logger outbound.LoggerPort, outcome domain.CallOutcome) {
	if p.recorder == nil {
		return
	}
	err := p.workerPool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), outcomeRecordTimeout)
		defer cancel()
		if err := p.recorder.Record(ctx, outcome); err != nil {
			logger.Error(err, "Failed to record call outcome")
		}
	})
	if err != nil {
		logger.Error(err, "Failed to submit call outcome recording")
	}
}

var fileNameSanitizer = strings.NewReplacer("/", "_", "\\", "_", "..", "_")

// AudioFileName derives the asset name {callId}_{unixTimestamp}_{languageCode}.mp3.
func AudioFileName(callID string, at time.Time, language domain.Language) string {
	return fmt.Sprintf("%s_%d_%s.mp3", fileNameSanitizer.Replace(callID), at.Unix(), language.Code())
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
