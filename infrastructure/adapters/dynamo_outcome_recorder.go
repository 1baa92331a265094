package adapters

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"time"
)

type dynamoOutcomeItem struct {
	CallId          string   `dynamodbav:"call_id"`
	OutcomeId       string   `dynamodbav:"outcome_id"`
	Pincode         string   `dynamodbav:"pincode"`
	Language        string   `dynamodbav:"language"`
	City            string   `dynamodbav:"city"`
	Region          string   `dynamodbav:"region"`
	ExactMatch      bool     `dynamodbav:"exact_match"`
	Weather         string   `dynamodbav:"weather"`
	Temperature     *float64 `dynamodbav:"temperature,omitempty"`
	WeatherFallback bool     `dynamodbav:"weather_fallback"`
	Price           int      `dynamodbav:"price"`
	PriceFallback   bool     `dynamodbav:"price_fallback"`
	Message         string   `dynamodbav:"message"`
	Delivery        string   `dynamodbav:"delivery"`
	AudioUrl        string   `dynamodbav:"audio_url,omitempty"`
	FinishedAt      string   `dynamodbav:"finished_at"`
	TTL             int64    `dynamodbav:"ttl"`
}

type dynamoOutcomeRecorder struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
}

func NewDynamoOutcomeRecorder(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI,
	dynamoConfig *config.DynamoConfig) outbound.CallOutcomeRecorderPort {
	return &dynamoOutcomeRecorder{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (r *dynamoOutcomeRecorder) Record(ctx context.Context, outcome domain.CallOutcome) error {
	item := r.toItem(outcome)

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to marshal call outcome item", map[string]interface{}{
			"call_id": outcome.CallID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(r.dynamoConfig.TableName),
	}

	_, err = r.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to save call outcome item", map[string]interface{}{
			"call_id": outcome.CallID,
			"table":   r.dynamoConfig.TableName,
		})
		return err
	}

	return nil
}

func (r *dynamoOutcomeRecorder) toItem(outcome domain.CallOutcome) dynamoOutcomeItem {
	return dynamoOutcomeItem{
		CallId:          outcome.CallID,
		OutcomeId:       outcome.ID,
		Pincode:         outcome.Pincode,
		Language:        outcome.Language.Code(),
		City:            outcome.Location.CityName,
		Region:          outcome.Location.RegionName,
		ExactMatch:      outcome.Location.IsExactMatch,
		Weather:         outcome.Weather.Reading.Description,
		Temperature:     outcome.Weather.Reading.TemperatureCelsius,
		WeatherFallback: outcome.Weather.Fallback,
		Price:           int(outcome.Price.Quote),
		PriceFallback:   outcome.Price.Fallback,
		Message:         string(outcome.Message),
		Delivery:        string(outcome.Delivery),
		AudioUrl:        outcome.AudioURL,
		FinishedAt:      outcome.FinishedAt.UTC().Format(time.RFC3339),
		TTL:             outcome.FinishedAt.Add(time.Duration(r.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
}
