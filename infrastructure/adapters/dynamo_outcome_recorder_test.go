package adapters

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/gulam-moin/interactive-voice-response/config"
	"github.com/gulam-moin/interactive-voice-response/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	inputs []*dynamodb.PutItemInput
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.inputs = append(f.inputs, input)
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoOutcomeRecorder_Record(t *testing.T) {
	svc := &fakeDynamo{}
	recorder := NewDynamoOutcomeRecorder(newTestLogger(), svc, &config.DynamoConfig{TableName: "call_outcomes", TtlMinutes: 60})
	finishedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	err := recorder.Record(context.Background(), domain.CallOutcome{
		ID:         "outcome-1",
		CallID:     "CA1",
		Pincode:    "400001",
		Language:   domain.English,
		Location:   domain.ResolvedLocation{CityName: "Mumbai", RegionName: "Maharashtra", IsExactMatch: true},
		Weather:    domain.WeatherLookup{Reading: domain.DefaultWeatherReading(), Fallback: true},
		Price:      domain.PriceLookup{Quote: 45},
		Message:    "message",
		Delivery:   domain.DeliverySpoken,
		FinishedAt: finishedAt,
	})

	require.NoError(t, err)
	require.Len(t, svc.inputs, 1)
	assert.Equal(t, "call_outcomes", aws.StringValue(svc.inputs[0].TableName))

	var item dynamoOutcomeItem
	require.NoError(t, dynamodbattribute.UnmarshalMap(svc.inputs[0].Item, &item))
	assert.Equal(t, "CA1", item.CallId)
	assert.Equal(t, "Mumbai", item.City)
	assert.True(t, item.WeatherFallback)
	assert.Nil(t, item.Temperature)
	assert.Equal(t, 45, item.Price)
	assert.Equal(t, "say", item.Delivery)
	assert.Equal(t, "2024-03-01T10:00:00Z", item.FinishedAt)
	assert.Equal(t, finishedAt.Add(time.Hour).Unix(), item.TTL)
}
